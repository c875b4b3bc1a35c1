package uploads

import (
	"errors"
	"testing"
)

func TestResolve(t *testing.T) {
	names := []string{"angular.png", "reactjs.png", "vue.gif", "vue.mp4"}

	cases := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "stem", input: "reactjs", want: "reactjs.png"},
		{name: "exact", input: "vue.gif", want: "vue.gif"},
		{name: "trimmed", input: "  angular ", want: "angular.png"},
		{name: "ambiguous stem", input: "vue", wantErr: ErrAmbiguous},
		{name: "missing", input: "svelte", wantErr: ErrNoMatch},
		{name: "empty", input: "", wantErr: ErrNoMatch},
		{name: "case sensitive", input: "ReactJS", wantErr: ErrNoMatch},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Resolve(names, tc.input)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("error: got %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolve: %v", err)
			}
			if got != tc.want {
				t.Fatalf("resolve(%q): got %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
