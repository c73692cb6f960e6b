package menu

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/atomicstack/popup-launcher/internal/launcher"
	"github.com/atomicstack/popup-launcher/internal/logging"
	"github.com/atomicstack/popup-launcher/internal/logging/events"
	"github.com/atomicstack/popup-launcher/internal/source"
	"github.com/atomicstack/popup-launcher/internal/template"
)

// Builder constructs menu models from document references. Submenus are
// fetched and parsed eagerly, depth first; a build either completes or
// fails with a diagnostic naming the offending document.
type Builder struct {
	resolver *source.Resolver
	cfg      *launcher.Config
}

// NewBuilder returns a Builder using the given resolver and launcher
// configuration.
func NewBuilder(resolver *source.Resolver, cfg *launcher.Config) *Builder {
	return &Builder{resolver: resolver, cfg: cfg}
}

// Build constructs the model tree rooted at ref. Failure to resolve the
// root document is fatal; unreachable submenu and file-choice targets
// inside the tree are logged and omitted.
func (b *Builder) Build(ref string) (*Model, error) {
	st := &buildState{active: make(map[string]bool)}
	return b.build(ref, nil, 0, st)
}

// buildState tracks the documents on the current recursion path so a
// document referencing itself or an ancestor fails instead of recursing
// forever.
type buildState struct {
	active map[string]bool
	stack  []string
}

type document struct {
	Title       string       `json:"menu-title"`
	FileChoices []fileChoice `json:"file-choice"`
	Menu        []entry      `json:"menu"`
}

type fileChoice struct {
	Text string `json:"text"`
	File string `json:"file"`
}

// entry is one raw menu item. Custom command types carry arbitrary
// extra fields used as template arguments, so entries stay schemaless
// until dispatch.
type entry map[string]interface{}

func (e entry) str(key string) string {
	if v, ok := e[key].(string); ok {
		return v
	}
	return ""
}

// args returns every string-valued field of the entry, for template
// expansion of custom command items.
func (e entry) args() map[string]string {
	out := make(map[string]string, len(e))
	for key, value := range e {
		if s, ok := value.(string); ok {
			out[key] = s
		}
	}
	return out
}

func (b *Builder) build(ref string, trace []string, level int, st *buildState) (*Model, error) {
	full := b.resolver.Join(ref)
	if st.active[full] {
		return nil, &CycleError{Ref: ref, Stack: append([]string(nil), st.stack...)}
	}
	st.active[full] = true
	st.stack = append(st.stack, ref)
	defer func() {
		delete(st.active, full)
		st.stack = st.stack[:len(st.stack)-1]
	}()

	stream, err := b.resolver.Resolve(ref)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(stream)
	stream.Close()
	if err != nil {
		return nil, fmt.Errorf("in document %q: %v: %w", ref, err, source.ErrUnreachable)
	}

	var doc document
	if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
		return nil, fmt.Errorf("in document %q: %w", ref, err)
	}

	title := strings.TrimSpace(doc.Title)
	if title == "" {
		title = source.Name(ref)
	}
	model := &Model{Title: title, Level: level}

	for _, choice := range doc.FileChoices {
		if choice.Text == "" || choice.File == "" {
			logging.Warnf("parser: %s: file-choice entry needs both text and file, skipped", ref)
			events.Parser.Skip(ref, "file-choice missing field")
			continue
		}
		target := strings.TrimSpace(choice.File)
		if err := b.resolver.Check(target); err != nil {
			logging.Warnf("parser: %s: file %q not found, skipped", ref, target)
			events.Parser.Skip(ref, "file-choice unresolvable")
			continue
		}
		model.FileChoices = append(model.FileChoices, &Item{
			Kind:   KindFileChoice,
			Text:   choice.Text,
			Target: target,
			Trace:  append([]string(nil), trace...),
		})
	}

	if len(doc.Menu) == 0 {
		return nil, fmt.Errorf("in document %q: %w", ref, ErrEmptyMenu)
	}

	for _, raw := range doc.Menu {
		item, err := b.buildItem(ref, raw, trace, level, st)
		if err != nil {
			return nil, err
		}
		if item != nil {
			model.Items = append(model.Items, item)
		}
	}

	events.Parser.Document(ref, level, len(model.Items))
	return model, nil
}

// buildItem dispatches one raw entry on its type. A nil item with nil
// error means the entry was skipped.
func (b *Builder) buildItem(ref string, raw entry, trace []string, level int, st *buildState) (*Item, error) {
	itemType := raw.str("type")

	if spec, ok := b.cfg.Command(itemType); ok {
		return b.buildCommand(ref, itemType, spec, raw, trace)
	}

	switch itemType {
	case "menu":
		if err := requireFields(ref, itemType, raw, "text", "file"); err != nil {
			return nil, err
		}
		return b.buildSubMenu(ref, raw, trace, level, st)

	case "title":
		if err := requireFields(ref, itemType, raw, "text"); err != nil {
			return nil, err
		}
		item := newItem(KindTitle, raw, trace)
		return item, nil

	case "separator":
		return newItem(KindSeparator, raw, trace), nil

	default:
		logging.Warnf("parser: %s: unknown type %q, skipped", ref, itemType)
		events.Parser.Skip(ref, "unknown type "+itemType)
		return nil, nil
	}
}

func (b *Builder) buildCommand(ref, itemType string, spec launcher.CommandSpec, raw entry, trace []string) (*Item, error) {
	if err := requireFields(ref, itemType, raw, "text"); err != nil {
		return nil, err
	}
	command, err := template.Expand(spec.Command, spec.ArgFlags, raw.args())
	if err != nil {
		return nil, fmt.Errorf("in document %q: type %q: %w", ref, itemType, err)
	}
	item := newItem(KindCommand, raw, trace)
	item.Command = command
	return item, nil
}

func (b *Builder) buildSubMenu(ref string, raw entry, trace []string, level int, st *buildState) (*Item, error) {
	text := raw.str("text")
	file := strings.TrimSpace(raw.str("file"))

	childTrace := append(append([]string(nil), trace...), text)
	sub, err := b.build(file, childTrace, level+1, st)
	if err != nil {
		if errors.Is(err, source.ErrNotFound) || errors.Is(err, source.ErrUnreachable) {
			logging.Warnf("parser: %s: file %q not found, skipped", ref, file)
			events.Parser.Skip(ref, "submenu unresolvable")
			return nil, nil
		}
		// Parse failures inside a reachable submenu abort the build.
		return nil, err
	}

	item := newItem(KindSubMenu, raw, trace)
	item.Sub = sub
	return item, nil
}

func newItem(kind Kind, raw entry, trace []string) *Item {
	return &Item{
		Kind:     kind,
		Text:     raw.str("text"),
		Style:    raw.str("style"),
		Tip:      raw.str("tip"),
		Theme:    raw.str("theme"),
		HelpLink: raw.str("help-link"),
		Trace:    append([]string(nil), trace...),
	}
}

// requireFields enforces mandatory keys on an entry. A key whose value
// is absent or empty fails the whole build.
func requireFields(ref, itemType string, raw entry, fields ...string) error {
	for _, field := range fields {
		if raw.str(field) == "" {
			return &MissingFieldError{Ref: ref, ItemType: itemType, Field: field}
		}
	}
	return nil
}
