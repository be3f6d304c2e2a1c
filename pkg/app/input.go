package app

// InputKind tells where an InputFile's content comes from
type InputKind int

const (
	Ordinary InputKind = iota
	Stdin
	ThemePreview
)

// InputFile is one input of a run
type InputFile struct {
	Kind InputKind
	Path string
}

// OrdinaryFile is a file on disk
func OrdinaryFile(path string) InputFile {
	return InputFile{Kind: Ordinary, Path: path}
}

// StdinFile is standard input
func StdinFile() InputFile {
	return InputFile{Kind: Stdin}
}

// ThemePreviewFile is the sample document built into tint
func ThemePreviewFile() InputFile {
	return InputFile{Kind: ThemePreview}
}

// Name is used in headers and diagnostics
func (f InputFile) Name() string {
	switch f.Kind {
	case Stdin:
		return "STDIN"
	case ThemePreview:
		return "theme preview"
	default:
		return f.Path
	}
}
