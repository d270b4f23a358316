package tabular

import (
	"reflect"
	"testing"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"plain fields", "a,b,c", []string{"a", "b", "c"}},
		{"quoted delimiter", `a,"b,c",d`, []string{"a", "b,c", "d"}},
		{"trims whitespace", "  a , b ,c  ", []string{"a", "b", "c"}},
		{"empty line yields one empty field", "", []string{""}},
		{"trailing delimiter yields empty final field", "a,b,", []string{"a", "b", ""}},
		{"leading delimiter yields empty first field", ",a", []string{"", "a"}},
		{"quotes stripped from content", `"hello",world`, []string{"hello", "world"}},
		{"quote mid-field toggles state", `a"b,c"d,e`, []string{"ab,cd", "e"}},
		{"unbalanced quote runs to end of line", `a,"b,c`, []string{"a", "b,c"}},
		{"only delimiters", ",,", []string{"", "", ""}},
		{"nested quoted commas", `"Smith, J.; Doe, A.",2020`, []string{"Smith, J.; Doe, A.", "2020"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLine(tt.line); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseLine(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestBlank(t *testing.T) {
	if !Blank([]string{""}) {
		t.Error("Blank single empty field = false, want true")
	}
	if !Blank([]string{"", "", ""}) {
		t.Error("Blank all-empty fields = false, want true")
	}
	if Blank([]string{"", "x"}) {
		t.Error("Blank with non-empty field = true, want false")
	}
}

func TestParseDocumentHeaderAndRows(t *testing.T) {
	text := "authors,title,year\n\"Smith, J.\",Media Study,2020\nDoe,Politics Online,2021\n"
	doc := ParseDocument(text)

	wantHeader := []string{"authors", "title", "year"}
	if !reflect.DeepEqual(doc.Header, wantHeader) {
		t.Errorf("Header = %q, want %q", doc.Header, wantHeader)
	}
	if len(doc.Rows) != 2 {
		t.Fatalf("len(Rows) = %d, want 2", len(doc.Rows))
	}
	if doc.Rows[0][0] != "Smith, J." {
		t.Errorf("Rows[0][0] = %q, want %q", doc.Rows[0][0], "Smith, J.")
	}
}

func TestParseDocumentSkipsBlankLines(t *testing.T) {
	text := "h1,h2\na,b\n\nc,d\n   \n"
	doc := ParseDocument(text)
	if len(doc.Rows) != 2 {
		t.Errorf("len(Rows) = %d, want 2 (blank lines skipped)", len(doc.Rows))
	}
}

func TestParseDocumentCRLF(t *testing.T) {
	doc := ParseDocument("h1,h2\r\na,b\r\nc,d\r\n")
	if len(doc.Rows) != 2 {
		t.Fatalf("len(Rows) = %d, want 2", len(doc.Rows))
	}
	if doc.Rows[1][1] != "d" {
		t.Errorf("Rows[1][1] = %q, want %q", doc.Rows[1][1], "d")
	}
}

func TestParseDocumentEmpty(t *testing.T) {
	doc := ParseDocument("")
	if doc.Header != nil {
		t.Errorf("Header = %v, want nil", doc.Header)
	}
	if len(doc.Rows) != 0 {
		t.Errorf("len(Rows) = %d, want 0", len(doc.Rows))
	}
}
