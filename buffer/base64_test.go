package buffer

import "testing"

func TestBtoa(t *testing.T) {
	tests := []struct {
		in   string
		want string
		code Sentinel
	}{
		{"", "", OK},
		{"a", "YQ==", OK},
		{"ab", "YWI=", OK},
		{"abc", "YWJj", OK},
		{"©", "qQ==", OK},
		{"€", "", NotLatin1},
		{"\xff", "", NotLatin1},
	}
	for _, tt := range tests {
		got, code := Btoa(tt.in)
		if got != tt.want || code != tt.code {
			t.Errorf("Btoa(%q) = %q, %d, want %q, %d", tt.in, got, code, tt.want, tt.code)
		}
	}
}

func TestAtob(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		code Sentinel
	}{
		{"padded", "YQ==", "a", OK},
		{"unpadded", "YQ", "a", OK},
		{"three chars", "YWI", "ab", OK},
		{"whitespace", " Y Q\n= =\t", "a", OK},
		{"high bytes", "//79", "\u00ff\u00fe\u00fd", OK},
		{"empty", "", "", OK},
		{"single char", "Y", "", BadLength},
		{"bad padded length", "YQ=", "", BadLength},
		{"five chars", "YWJjZ", "", BadLength},
		{"single non-ascii char", "é", "", BadLength},
		{"two units with astral char", "😀", "", InvalidChar},
		{"five units non-ascii", "YWJjé", "", BadLength},
		{"invalid char", "Y@==", "", InvalidChar},
		{"url alphabet", "-_8=", "", InvalidChar},
		{"data after padding", "YQ==YQ==", "", InvalidChar},
		{"too much padding", "Y===", "", InvalidChar},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, code := Atob(tt.in)
			if got != tt.want || code != tt.code {
				t.Errorf("Atob(%q) = %q, %d, want %q, %d", tt.in, got, code, tt.want, tt.code)
			}
		})
	}
}

func TestAtobBtoaRoundTrip(t *testing.T) {
	for _, s := range []string{"héllo", "\x00\x01\x02", "ÿþ", "plain ascii"} {
		enc, code := Btoa(s)
		if code != OK {
			t.Fatalf("Btoa(%q) code = %d", s, code)
		}
		dec, code := Atob(enc)
		if code != OK || dec != s {
			t.Errorf("Atob(Btoa(%q)) = %q, %d", s, dec, code)
		}
	}
}
