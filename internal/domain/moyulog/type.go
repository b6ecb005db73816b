package moyulog

import "fmt"

type Type string

const (
	TypeWater  Type = "water"
	TypeToilet Type = "toilet"
	TypeWalk   Type = "walk"
	TypeChat   Type = "chat"
	TypeOther  Type = "other"
)

// Kind описывает кнопку действия на главном экране.
type Kind struct {
	Type  Type
	Label string
	Icon  string
}

// Kinds - закрытый набор действий в порядке отображения.
var Kinds = []Kind{
	{Type: TypeWater, Label: "喝水", Icon: "🥤"},
	{Type: TypeToilet, Label: "带薪拉屎", Icon: "🚽"},
	{Type: TypeWalk, Label: "起来走走", Icon: "🚶‍♀️"},
	{Type: TypeChat, Label: "八卦一下", Icon: "💬"},
	{Type: TypeOther, Label: "发呆", Icon: "🐟"},
}

// Validate проверяет, что тип входит в закрытый набор.
func (t Type) Validate() error {
	switch t {
	case TypeWater, TypeToilet, TypeWalk, TypeChat, TypeOther:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownType, string(t))
}

func (t Type) String() string {
	return string(t)
}

// Label возвращает подпись действия.
func (t Type) Label() string {
	if k, ok := t.kind(); ok {
		return k.Label
	}
	return "记录"
}

// Icon возвращает значок действия.
func (t Type) Icon() string {
	if k, ok := t.kind(); ok {
		return k.Icon
	}
	return "📝"
}

func (t Type) kind() (Kind, bool) {
	for _, k := range Kinds {
		if k.Type == t {
			return k, true
		}
	}
	return Kind{}, false
}
