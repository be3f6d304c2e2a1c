package assets

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/beevik/etree"

	"github.com/arthur-debert/tint/pkg/errors"
	"github.com/arthur-debert/tint/pkg/logging"
	"github.com/arthur-debert/tint/pkg/paths"
)

// bundleVersion is bumped whenever the layout of assets.xml changes
const bundleVersion = "1"

// rawDefinition is one user supplied XML definition, kept verbatim
type rawDefinition struct {
	file string
	data []byte
}

type rawDefinitions struct {
	syntaxes []rawDefinition
	themes   []rawDefinition
}

// compileSyntax turns a chroma XML lexer definition into a Syntax. Besides
// chroma's own config elements a definition may carry <hidden>true</hidden>
// to keep it out of --list-languages.
func compileSyntax(def rawDefinition) (Syntax, error) {
	lexer, err := chroma.Unmarshal(def.data)
	if err != nil {
		return Syntax{}, errors.Wrapf(err, errors.ErrAssetLoad, "invalid syntax definition '%s'", def.file)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(def.data); err != nil {
		return Syntax{}, errors.Wrapf(err, errors.ErrAssetLoad, "invalid syntax definition '%s'", def.file)
	}
	hidden := false
	if root := doc.Root(); root != nil {
		if el := root.FindElement("./config/hidden"); el != nil {
			hidden, _ = strconv.ParseBool(strings.TrimSpace(el.Text()))
		}
	}

	syntax := NewSyntax(lexer, hidden)
	if syntax.Name == "" {
		return Syntax{}, errors.Newf(errors.ErrAssetLoad, "syntax definition '%s' has no name", def.file)
	}
	return syntax, nil
}

// compileTheme parses a chroma XML style
func compileTheme(def rawDefinition) (Theme, error) {
	s, err := chroma.NewXMLStyle(bytes.NewReader(def.data))
	if err != nil {
		return Theme{}, errors.Wrapf(err, errors.ErrAssetLoad, "invalid theme '%s'", def.file)
	}
	name := s.Name
	if name == "" {
		name = strings.TrimSuffix(def.file, filepath.Ext(def.file))
	}
	return Theme{Name: name, Style: s}, nil
}

// Save persists the user definitions of the set as an XML bundle in
// targetDir (the cache directory when empty). The embedded definitions are
// not written; they are part of the binary.
func (a *HighlightingAssets) Save(targetDir string) error {
	if targetDir == "" {
		targetDir = paths.CacheDir()
	}
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "cannot create cache directory '%s'", targetDir)
	}

	doc, err := a.bundleDocument()
	if err != nil {
		return err
	}

	target := filepath.Join(targetDir, paths.AssetBundleFile)
	tmp, err := os.CreateTemp(targetDir, ".assets-*.xml")
	if err != nil {
		return errors.Wrapf(err, errors.ErrIO, "cannot write '%s'", target)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := doc.WriteTo(tmp); err != nil {
		_ = tmp.Close()
		return errors.Wrapf(err, errors.ErrIO, "cannot write '%s'", target)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "cannot write '%s'", target)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "cannot write '%s'", target)
	}

	logger := logging.GetLogger("assets")
	logger.Info().
		Str("path", target).
		Int("syntaxes", len(a.raw.syntaxes)).
		Int("themes", len(a.raw.themes)).
		Msg("Asset cache written")
	return nil
}

func (a *HighlightingAssets) bundleDocument() (*etree.Document, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("assets")
	root.CreateAttr("version", bundleVersion)
	root.CreateAttr("blank", strconv.FormatBool(a.blank))

	add := func(tag string, defs []rawDefinition) error {
		for _, def := range defs {
			src := etree.NewDocument()
			if err := src.ReadFromBytes(def.data); err != nil || src.Root() == nil {
				return errors.Newf(errors.ErrAssetLoad, "invalid definition '%s'", def.file)
			}
			el := root.CreateElement(tag)
			el.CreateAttr("file", def.file)
			el.AddChild(src.Root().Copy())
		}
		return nil
	}
	if err := add("syntax", a.raw.syntaxes); err != nil {
		return nil, err
	}
	if err := add("theme", a.raw.themes); err != nil {
		return nil, err
	}

	doc.Indent(2)
	return doc, nil
}

// readBundle reads the definitions written by Save
func readBundle(path string) (rawDefinitions, bool, error) {
	var raw rawDefinitions

	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return raw, false, errors.Wrapf(err, errors.ErrAssetLoad, "cannot read asset cache '%s'", path)
	}
	root := doc.SelectElement("assets")
	if root == nil {
		return raw, false, errors.Newf(errors.ErrAssetLoad, "'%s' is not an asset cache", path)
	}
	if v := root.SelectAttrValue("version", ""); v != bundleVersion {
		return raw, false, errors.Newf(errors.ErrAssetLoad,
			"asset cache '%s' has version '%s', run 'tint cache --clear'", path, v)
	}
	blank, _ := strconv.ParseBool(root.SelectAttrValue("blank", "false"))

	for _, el := range root.ChildElements() {
		children := el.ChildElements()
		if len(children) == 0 {
			continue
		}
		def := etree.NewDocument()
		def.SetRoot(children[0].Copy())
		data, err := def.WriteToBytes()
		if err != nil {
			return raw, false, errors.Wrapf(err, errors.ErrAssetLoad, "cannot read asset cache '%s'", path)
		}
		entry := rawDefinition{file: el.SelectAttrValue("file", ""), data: data}

		switch el.Tag {
		case "syntax":
			raw.syntaxes = append(raw.syntaxes, entry)
		case "theme":
			raw.themes = append(raw.themes, entry)
		}
	}
	return raw, blank, nil
}
