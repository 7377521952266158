package h5p

// Library pins declared in h5p.json. H5P hosts validate these strictly, so
// they only change together with the content types they describe.
var preloaded = []Dependency{
	{MachineName: "H5P.Column", MajorVersion: 1, MinorVersion: 13},
	{MachineName: "H5P.Text", MajorVersion: 1, MinorVersion: 1},
	{MachineName: "H5P.MultiChoice", MajorVersion: 1, MinorVersion: 14},
	{MachineName: "H5P.Image", MajorVersion: 1, MinorVersion: 1},
	{MachineName: "FontAwesome", MajorVersion: 4, MinorVersion: 5},
}

const (
	mainLibrary        = "H5P.Column"
	textLibrary        = "H5P.Text 1.1"
	multiChoiceLibrary = "H5P.MultiChoice 1.14"
)

type Dependency struct {
	MachineName  string `json:"machineName"`
	MajorVersion int    `json:"majorVersion"`
	MinorVersion int    `json:"minorVersion"`
}

// Manifest is h5p.json.
type Manifest struct {
	Title                 string       `json:"title"`
	Language              string       `json:"language"`
	MainLibrary           string       `json:"mainLibrary"`
	EmbedTypes            []string     `json:"embedTypes"`
	License               string       `json:"license"`
	PreloadedDependencies []Dependency `json:"preloadedDependencies"`
}

// Content is content/content.json for an H5P.Column.
type Content struct {
	UseSeparator string  `json:"useSeparator"`
	Content      []Block `json:"content"`
}

type Block struct {
	Content Library `json:"content"`
}

// Library is one column entry. Params is TextParams or MultiChoiceParams.
type Library struct {
	Library string `json:"library"`
	Params  any    `json:"params"`
}

type TextParams struct {
	Text string `json:"text"`
}

type MultiChoiceParams struct {
	Question  string    `json:"question"`
	Answers   []Answer  `json:"answers"`
	Behaviour Behaviour `json:"behaviour"`
}

type Answer struct {
	Text            string          `json:"text"`
	Correct         bool            `json:"correct"`
	TipsAndFeedback TipsAndFeedback `json:"tipsAndFeedback"`
}

type TipsAndFeedback struct {
	Tip               string `json:"tip"`
	ChosenFeedback    string `json:"chosenFeedback"`
	NotChosenFeedback string `json:"notChosenFeedback"`
}

type Behaviour struct {
	SinglePoint                bool   `json:"singlePoint"`
	RandomAnswers              bool   `json:"randomAnswers"`
	ShowSolutionsRequiresInput bool   `json:"showSolutionsRequiresInput"`
	ConfirmCheckDialog         bool   `json:"confirmCheckDialog"`
	EnableRetry                bool   `json:"enableRetry"`
	EnableSolutionsButton      bool   `json:"enableSolutionsButton"`
	Type                       string `json:"type"`
}

var defaultBehaviour = Behaviour{
	RandomAnswers:              true,
	ShowSolutionsRequiresInput: true,
	EnableRetry:                true,
	EnableSolutionsButton:      true,
	Type:                       "auto",
}
