package archive

import (
	"path"
	"strings"
)

// Entry is a single archive member. Names ending in "/" are directories.
type Entry struct {
	Name string
	Data []byte
}

func (e Entry) IsDir() bool { return strings.HasSuffix(e.Name, "/") }

// Bundle is an ordered set of archive entries. With CreateFolders set (the
// default), adding "a/b.json" also records an explicit "a/" directory entry,
// the way common zip tooling does; callers that must ship without directory
// entries remove them before packing.
type Bundle struct {
	CreateFolders bool

	entries []Entry
	index   map[string]int
}

func NewBundle() *Bundle {
	return &Bundle{CreateFolders: true, index: map[string]int{}}
}

// AddFile stores data under name, replacing an existing entry of that name.
func (b *Bundle) AddFile(name string, data []byte) {
	name = strings.TrimPrefix(path.Clean("/"+name), "/")
	if b.CreateFolders {
		for dir := path.Dir(name); dir != "." && dir != "/"; dir = path.Dir(dir) {
			b.put(dir+"/", nil, true)
		}
	}
	b.put(name, data, false)
}

// Remove drops the named entry and reports whether it existed.
func (b *Bundle) Remove(name string) bool {
	i, ok := b.index[name]
	if !ok {
		return false
	}
	b.entries = append(b.entries[:i], b.entries[i+1:]...)
	delete(b.index, name)
	for j := i; j < len(b.entries); j++ {
		b.index[b.entries[j].Name] = j
	}
	return true
}

// RemoveDirectories drops every directory entry and returns their names.
func (b *Bundle) RemoveDirectories() []string {
	var removed []string
	for _, e := range b.Entries() {
		if e.IsDir() && b.Remove(e.Name) {
			removed = append(removed, e.Name)
		}
	}
	return removed
}

func (b *Bundle) Has(name string) bool {
	_, ok := b.index[name]
	return ok
}

// Entries returns the entries in insertion order.
func (b *Bundle) Entries() []Entry {
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

func (b *Bundle) Names() []string {
	out := make([]string, len(b.entries))
	for i, e := range b.entries {
		out[i] = e.Name
	}
	return out
}

func (b *Bundle) put(name string, data []byte, keepExisting bool) {
	if b.index == nil {
		b.index = map[string]int{}
	}
	if i, ok := b.index[name]; ok {
		if !keepExisting {
			b.entries[i].Data = data
		}
		return
	}
	b.index[name] = len(b.entries)
	b.entries = append(b.entries, Entry{Name: name, Data: data})
}
