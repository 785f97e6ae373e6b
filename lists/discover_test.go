package lists

import (
	"log/slog"
	"testing"

	"github.com/ItMeDiaTech/Documentation-Hub-sub002/logging"
	"github.com/ItMeDiaTech/Documentation-Hub-sub002/wml"
)

func TestDiscover(t *testing.T) {
	tests := []struct {
		name   string
		paras  []*wml.Paragraph
		want   int
		wantOK bool
	}{
		{
			name:   "majority of sub-items",
			paras:  []*wml.Paragraph{numbered(33, 1, "a"), numbered(33, 1, "b"), numbered(44, 1, "c")},
			want:   33,
			wantOK: true,
		},
		{
			name:   "majority regardless of order",
			paras:  []*wml.Paragraph{numbered(44, 1, "a"), numbered(33, 1, "b"), numbered(33, 2, "c")},
			want:   33,
			wantOK: true,
		},
		{
			name:   "tie goes to first seen",
			paras:  []*wml.Paragraph{numbered(44, 1, "a"), numbered(33, 1, "b")},
			want:   44,
			wantOK: true,
		},
		{
			name: "decimal top level beats majority",
			paras: []*wml.Paragraph{
				numbered(33, 1, "a"), numbered(33, 1, "b"), numbered(33, 1, "c"),
				numbered(34, 0, "d"),
			},
			want:   34,
			wantOK: true,
		},
		{
			name:   "bullet top level does not win the first pass",
			paras:  []*wml.Paragraph{numbered(44, 0, "a"), numbered(33, 1, "b"), numbered(33, 1, "c")},
			want:   33,
			wantOK: true,
		},
		{
			name:   "undefined numIds ignored",
			paras:  []*wml.Paragraph{numbered(99, 1, "a"), numbered(99, 1, "b"), numbered(33, 1, "c")},
			want:   33,
			wantOK: true,
		},
		{
			name:   "nothing numbered",
			paras:  []*wml.Paragraph{listPara("a"), normal("b")},
			wantOK: false,
		},
		{
			name:   "empty",
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Discover(tt.paras, testStore(), nil)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Discover() = (%d, %v), want (%d, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestDiscover_NoStore(t *testing.T) {
	paras := []*wml.Paragraph{numbered(33, 0, "a")}
	if id, ok := Discover(paras, nil, nil); ok {
		t.Errorf("Discover() with nil store = (%d, true), want no numbering", id)
	}
}

func TestDiscover_LogsToGivenLogger(t *testing.T) {
	h := logging.NewBufferedHandler(slog.LevelDebug)
	paras := []*wml.Paragraph{listPara("main"), numbered(44, 1, "sub")}

	if id, ok := Discover(paras, testStore(), slog.New(h)); !ok || id != 44 {
		t.Fatalf("Discover() = (%d, %v), want (44, true)", id, ok)
	}
	if !h.Contains(`"pass":"majority"`) {
		t.Errorf("log = %q, want the majority decision", h.String())
	}
}
