package format

import (
	"bytes"
	"encoding/xml"
	"strings"
)

type attr struct {
	name  string
	value string
}

// writer produces indented XML. Attributes with empty values are omitted.
type writer struct {
	buf bytes.Buffer
}

func (w *writer) String() string {
	return w.buf.String()
}

func (w *writer) indent(n int) {
	for i := 0; i < n; i++ {
		w.buf.WriteByte(' ')
	}
}

func (w *writer) startTag(tag string, attrs []attr) {
	w.buf.WriteString("<")
	w.buf.WriteString(tag)
	for _, a := range attrs {
		if a.value == "" {
			continue
		}
		w.buf.WriteString(" ")
		w.buf.WriteString(a.name)
		w.buf.WriteString(`="`)
		xml.EscapeText(&w.buf, []byte(a.value))
		w.buf.WriteString(`"`)
	}
}

func (w *writer) open(tag string, indent int, attrs ...attr) {
	w.indent(indent)
	w.startTag(tag, attrs)
	w.buf.WriteString(">\n")
}

func (w *writer) close(tag string, indent int) {
	w.indent(indent)
	w.buf.WriteString("</")
	w.buf.WriteString(tag)
	w.buf.WriteString(">\n")
}

func (w *writer) empty(tag string, indent int, attrs ...attr) {
	w.indent(indent)
	w.startTag(tag, attrs)
	w.buf.WriteString(" />\n")
}

// text writes the element even when content is empty.
func (w *writer) text(tag, content string, indent int, attrs ...attr) {
	w.indent(indent)
	w.startTag(tag, attrs)
	w.buf.WriteString(">")
	xml.EscapeText(&w.buf, []byte(content))
	w.buf.WriteString("</")
	w.buf.WriteString(tag)
	w.buf.WriteString(">\n")
}

func (w *writer) element(tag, content string, indent int) {
	if content == "" {
		return
	}
	w.text(tag, content, indent)
}

// raw writes content unescaped. Used for markup the parser already accepted.
func (w *writer) raw(tag, content string, indent int, attrs ...attr) {
	w.indent(indent)
	w.startTag(tag, attrs)
	w.buf.WriteString(">")
	w.buf.WriteString(content)
	w.buf.WriteString("</")
	w.buf.WriteString(tag)
	w.buf.WriteString(">\n")
}

func (w *writer) cdata(tag, content string, indent int) {
	if content == "" {
		return
	}
	w.indent(indent)
	w.buf.WriteString("<")
	w.buf.WriteString(tag)
	w.buf.WriteString("><![CDATA[")
	w.buf.WriteString(strings.ReplaceAll(content, "]]>", "]]]]><![CDATA[>"))
	w.buf.WriteString("]]></")
	w.buf.WriteString(tag)
	w.buf.WriteString(">\n")
}
