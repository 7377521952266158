package course

// Resource is a suggested link shown in every module's sidebar.
type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// DefaultResources returns the placeholder list a new session starts with.
func DefaultResources() []Resource {
	return []Resource{
		{Title: "Lectura complementaria PDF", URL: "#"},
		{Title: "Plantilla de trabajo", URL: "#"},
		{Title: "Audio resumen del módulo", URL: "#"},
	}
}

// NewResource is the entry appended by "add resource".
func NewResource() Resource {
	return Resource{Title: "Nuevo recurso", URL: "#"}
}

// CloneResources copies rs so callers can't mutate a shared backing array.
func CloneResources(rs []Resource) []Resource {
	if rs == nil {
		return nil
	}
	out := make([]Resource, len(rs))
	copy(out, rs)
	return out
}
