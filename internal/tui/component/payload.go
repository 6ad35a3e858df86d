package component

// PayloadKind 區分 Payload 的種類
type PayloadKind int

const (
	PayloadNone PayloadKind = iota
	PayloadOne
	PayloadVec
)

// Payload Valuer 報告的組件狀態快照
type Payload struct {
	Kind PayloadKind
	One  interface{}
	Vec  []interface{}
}

// None 空載荷
func None() Payload {
	return Payload{Kind: PayloadNone}
}

// One 包裝單個值
func One(v interface{}) Payload {
	return Payload{Kind: PayloadOne, One: v}
}

// Vec 包裝多個值
func Vec(vs ...interface{}) Payload {
	return Payload{Kind: PayloadVec, Vec: append([]interface{}(nil), vs...)}
}

// IsNone 報告 p 是否不攜帶值
func (p Payload) IsNone() bool {
	return p.Kind == PayloadNone
}
