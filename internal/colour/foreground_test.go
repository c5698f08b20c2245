package colour

import "testing"

func TestSelectForeground(t *testing.T) {
	tests := []struct {
		name string
		bg   RGB
		want RGB
	}{
		{
			name: "black background takes white text",
			bg:   RGB{R: 0, G: 0, B: 0},
			want: White,
		},
		{
			name: "white background takes black text",
			bg:   RGB{R: 255, G: 255, B: 255},
			want: Black,
		},
		{
			name: "navy takes white text",
			bg:   RGB{R: 0, G: 0, B: 128},
			want: White,
		},
		{
			name: "yellow takes black text",
			bg:   RGB{R: 255, G: 255, B: 0},
			want: Black,
		},
		{
			name: "royal blue takes white text",
			bg:   RGB{R: 65, G: 105, B: 225},
			want: White,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, contrast := SelectForeground(tt.bg)
			if got != tt.want {
				t.Errorf("SelectForeground(%v) = %v, want %v", tt.bg, got, tt.want)
			}
			if want := ContrastRatio(tt.bg, got); contrast != want {
				t.Errorf("reported contrast = %f, want %f", contrast, want)
			}
		})
	}
}

func TestSelectForegroundPicksHigherContrast(t *testing.T) {
	// Whatever the background, the reported contrast must be the larger of
	// the two canonical options.
	backgrounds := []RGB{
		{R: 10, G: 10, B: 10},
		{R: 245, G: 245, B: 245},
		{R: 120, G: 60, B: 200},
		{R: 0, G: 160, B: 80},
		{R: 200, G: 30, B: 30},
	}

	for _, bg := range backgrounds {
		_, contrast := SelectForeground(bg)
		white := ContrastRatio(bg, White)
		black := ContrastRatio(bg, Black)
		best := white
		if black > best {
			best = black
		}
		if contrast != best {
			t.Errorf("SelectForeground(%v) contrast = %f, want %f", bg, contrast, best)
		}
	}
}

func TestForegroundFloor(t *testing.T) {
	tests := []struct {
		n    int
		want float64
	}{
		{n: 1, want: 1.5},
		{n: 5, want: 1.5},
		{n: 6, want: 4.5},
		{n: 10, want: 4.5},
		{n: 11, want: 0},
		{n: 40, want: 0},
	}

	for _, tt := range tests {
		if got := foregroundFloor(tt.n); got != tt.want {
			t.Errorf("foregroundFloor(%d) = %f, want %f", tt.n, got, tt.want)
		}
	}
}
