package props

// TextSpan 一段可覆蓋樣式的文本
type TextSpan struct {
	Content string
	Style   Style
}

// Span 創建無樣式的 span
func Span(content string) TextSpan {
	return TextSpan{Content: content}
}

// Fg 設置 span 前景色
func (t TextSpan) Fg(c Color) TextSpan {
	t.Style.Foreground = c
	return t
}

// Bg 設置 span 背景色
func (t TextSpan) Bg(c Color) TextSpan {
	t.Style.Background = c
	return t
}

// With 為 span 追加文字修飾
func (t TextSpan) With(m Modifier) TextSpan {
	t.Style.Modifiers |= m
	return t
}

// Table 行的列表，每行是 span 的列表
type Table [][]TextSpan

func (t Table) clone() Table {
	if t == nil {
		return nil
	}
	out := make(Table, len(t))
	for i, row := range t {
		out[i] = append([]TextSpan(nil), row...)
	}
	return out
}

// TableBuilder 逐行組裝 Table
type TableBuilder struct {
	rows Table
	cur  []TextSpan
}

// NewTable 創建空表
func NewTable() *TableBuilder {
	return &TableBuilder{}
}

// AddCol 向當前行追加一列
func (b *TableBuilder) AddCol(s TextSpan) *TableBuilder {
	b.cur = append(b.cur, s)
	return b
}

// AddRow 結束當前行
func (b *TableBuilder) AddRow() *TableBuilder {
	b.rows = append(b.rows, b.cur)
	b.cur = nil
	return b
}

// Build 結束未完成的行並返回表
func (b *TableBuilder) Build() Table {
	if len(b.cur) > 0 {
		b.AddRow()
	}
	return b.rows.clone()
}
