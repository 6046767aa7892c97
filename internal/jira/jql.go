package jira

import "strings"

// QuoteValue はJQLの文字列リテラルとして安全な形に値を引用する。
// バックスラッシュとダブルクォートをエスケープし、全体をダブルクォートで囲む。
func QuoteValue(value string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range value {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
