package liketoregex

import "testing"

func TestTranslate(t *testing.T) {
	cases := []struct{ in, want string }{
		{"abcd", "^abcd$"},
		{"a_cd", "^a.{1}cd$"},
		{"ab%d", "^ab.*d$"},
		{"ab%%cd", "^ab%cd$"},
		{"_abc", "^.{1}abc$"},
		{"%abc", "^.*abc$"},
		{"def_", "^def.{1}$"},
		{"def%", "^def.*$"},
		{"_O__%%___%%%O%", "^.{1}O_%_.{1}%.*O.*$"},
	}
	for _, c := range cases {
		if got := Translate(c.in); got != c.want {
			t.Errorf("Translate(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestMatch(t *testing.T) {
	ok, err := Match("Foobar", "f%bar")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("expected match")
	}

	ok, err = Match("Foobaz", "f%bar")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("expected no match")
	}
}
