package markup

import "testing"

func TestRender(t *testing.T) {
	cases := []struct {
		name, in, want string
	}{
		{"fixture", "**Hi** there\n- a\n- b\n\nNext", "<strong>Hi</strong> there<br/>• a<br/>• b<br/><br/>Next"},
		{"two bold spans", "**a** and **b**", "<strong>a</strong> and <strong>b</strong>"},
		{"leading dash is not a bullet", "- first", "- first"},
		{"html passes through", "<em>x</em>\n\ny", "<em>x</em><br/><br/>y"},
		{"bold does not span lines", "**a\nb**", "**a\nb**"},
		{"plain", "nothing to do", "nothing to do"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Render(tc.in); got != tc.want {
				t.Fatalf("Render(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestRenderIsStable(t *testing.T) {
	in := "**Hi** there\n- a\n- b\n\nNext"
	if Render(in) != Render(in) {
		t.Fatal("render must be deterministic")
	}
	if string(HTML(in)) != Render(in) {
		t.Fatal("HTML and Render must agree")
	}
}
