// Package flexfield fills the object attribute placeholders of an export
// template: {{<Prefix>_Name}}, {{<Prefix>_Field_<FieldName>}} and friends.
package flexfield

import (
	"strings"

	"github.com/pixil98/gonorth-export/internal/content"
	"github.com/pixil98/gonorth-export/internal/exporterr"
	"github.com/pixil98/gonorth-export/internal/placeholder"
)

// ObjectType tags the object handed to the resolver.
type ObjectType string

const (
	ObjectTypeNpc    ObjectType = "npc"
	ObjectTypePlayer ObjectType = "player"
	ObjectTypeItem   ObjectType = "item"
	ObjectTypeQuest  ObjectType = "quest"
	ObjectTypeSkill  ObjectType = "skill"
)

// ObjectData is the resolved object together with its type tag.
type ObjectData struct {
	Object     content.FlexFieldExportable
	ObjectType ObjectType
}

const (
	suffixId       = "_Id"
	suffixName     = "_Name"
	suffixField    = "_Field_"
	suffixIsPlayer = "_IsPlayer"
	fieldNameTail  = "_Name"
)

// Placeholders lists the tokens the resolver understands for a prefix.
func Placeholders(prefix string, objectType ObjectType) placeholder.List {
	l := placeholder.List{}.
		Token(prefix+suffixId, "Id of the object").
		Token(prefix+suffixName, "Name of the object").
		Token(prefix+suffixField+"<FieldName>", "Value of a field of the object").
		Token(prefix+suffixField+"<FieldName>"+fieldNameTail, "Name of a field of the object")
	if objectType == ObjectTypeNpc || objectType == ObjectTypePlayer {
		l = l.Block(prefix+suffixIsPlayer, "Only rendered if the npc is the player")
	}
	return l
}

// Binding ties an object to the placeholder prefix it is exposed under.
type Binding struct {
	Prefix string
	Data   ObjectData
}

// Replace substitutes the object placeholders of bindings and the plain tokens
// in one pass over code. Substituted values are never scanned again. Unknown
// tokens are left as written; references to missing fields are recorded in
// errs and expand to an empty string. The first token value for a name wins.
func Replace(code string, bindings []Binding, tokens map[string]string, settings placeholder.EscapeSettings, errs *exporterr.Collection) (string, error) {
	return placeholder.ReplacePattern(code, `[^{}]+`, func(groups []string) (string, error) {
		name := groups[0]
		for _, b := range bindings {
			if v, ok := Value(name, b.Prefix, b.Data, settings, errs); ok {
				return v, nil
			}
		}
		if v, ok := tokens[name]; ok {
			return v, nil
		}
		return placeholder.Token(name), nil
	})
}

// FillBlocks renders the object blocks for prefix.
func FillBlocks(code string, prefix string, data ObjectData) (string, error) {
	if data.Object == nil {
		return code, nil
	}
	return placeholder.RenderNamedBlock(code, prefix+suffixIsPlayer, isPlayer(data))
}

// Value returns the replacement of the token name when it is one of the
// object placeholders for prefix. A missing field is recorded in errs and
// expands to an empty string.
func Value(name string, prefix string, data ObjectData, settings placeholder.EscapeSettings, errs *exporterr.Collection) (string, bool) {
	if data.Object == nil {
		return "", false
	}
	rest, ok := strings.CutPrefix(name, prefix)
	if !ok {
		return "", false
	}
	obj := data.Object

	switch rest {
	case suffixId:
		return obj.GetId(), true
	case suffixName:
		return placeholder.Escape(obj.GetName(), settings), true
	}

	field, ok := strings.CutPrefix(rest, suffixField)
	if !ok || field == "" {
		return "", false
	}
	if f := content.FieldByName(obj, field); f != nil {
		return FieldValue(f, settings), true
	}
	if base, ok := strings.CutSuffix(field, fieldNameTail); ok {
		if f := content.FieldByName(obj, base); f != nil {
			return placeholder.Escape(f.Name, settings), true
		}
	}
	errs.AddFlexFieldNotFound(obj.GetName(), field)
	return "", true
}

// FieldValue renders a field value for code: numbers as written, everything
// else escaped.
func FieldValue(f *content.FlexField, settings placeholder.EscapeSettings) string {
	if f.IsNumber() {
		v := strings.TrimSpace(f.Value)
		if v == "" {
			return "0"
		}
		return v
	}
	return placeholder.Escape(f.Value, settings)
}

// View exposes the object to the template engine.
func View(data ObjectData, settings placeholder.EscapeSettings) map[string]any {
	if data.Object == nil {
		return nil
	}
	obj := data.Object

	fields := make(map[string]any, len(obj.GetFields()))
	for _, f := range obj.GetFields() {
		fields[f.Name] = FieldValue(&f, settings)
	}

	return map[string]any{
		"Id":       obj.GetId(),
		"Name":     placeholder.Escape(obj.GetName(), settings),
		"Type":     string(data.ObjectType),
		"Fields":   fields,
		"IsPlayer": isPlayer(data),
	}
}

func isPlayer(data ObjectData) bool {
	if data.ObjectType == ObjectTypePlayer {
		return true
	}
	npc, ok := data.Object.(*content.Npc)
	return ok && npc.IsPlayerNpc
}
