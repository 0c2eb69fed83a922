package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/vdrive/internal/domain/tree"
)

const ts = "01/02/2024 10:30 AM"

// C:\A\B plus C:\Docs
func fixture() *tree.Folder {
	drive := tree.NewDrive("C:", ts)
	a := drive.CreateFolder("A", ts)
	a.CreateFolder("B", ts)
	drive.CreateFolder("Docs", ts)
	return drive
}

func TestParse(t *testing.T) {
	tests := []struct {
		raw      string
		absolute bool
		drive    string
		comps    []string
	}{
		{"", false, "", nil},
		{"A", false, "", []string{"A"}},
		{"A/B", false, "", []string{"A", "B"}},
		{"A//B/", false, "", []string{"A", "B"}},
		{"C:", true, "C:", nil},
		{"C:/", true, "C:", nil},
		{"C:/A/B", true, "C:", []string{"A", "B"}},
		{"D:/A", true, "D:", []string{"A"}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			e := Parse(tt.raw)
			assert.Equal(t, tt.absolute, e.Absolute)
			assert.Equal(t, tt.drive, e.Drive)
			assert.Equal(t, tt.comps, e.Components)
		})
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		raw    string
		parent []string
		abs    bool
		name   string
	}{
		{"Docs", nil, false, "Docs"},
		{"Docs/Projects", []string{"Docs"}, false, "Projects"},
		{"C:/Docs", nil, true, "Docs"},
		{"C:/A/B/readme.txt", []string{"A", "B"}, true, "readme.txt"},
		{"Docs/", []string{"Docs"}, false, ""},
		{"Docs/ Name ", []string{"Docs"}, false, "Name"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			parent, name := Split(tt.raw)
			assert.Equal(t, tt.parent, parent.Components)
			assert.Equal(t, tt.abs, parent.Absolute)
			assert.Equal(t, tt.name, name)
		})
	}
}

func TestResolveAbsoluteMatchesNavigation(t *testing.T) {
	drive := fixture()
	b := drive.FindFolder("A").FindFolder("B")

	starts := []Working{Root("C:"), Root("C:").Join("A"), Root("C:").Join("Docs"), Root("C:").Join("A", "B")}
	for _, w := range starts {
		got, loc, err := Resolve(drive, w, Parse("C:/A/B"))
		require.NoError(t, err)
		assert.Same(t, b, got)
		assert.Equal(t, `C:\A\B`, loc.String())
	}

	w, err := Navigate(drive, Root("C:"), "A")
	require.NoError(t, err)
	w, err = Navigate(drive, w, "B")
	require.NoError(t, err)

	viaCD, err := Locate(drive, w)
	require.NoError(t, err)
	assert.Same(t, b, viaCD)
}

func TestResolveRelative(t *testing.T) {
	drive := fixture()

	got, loc, err := Resolve(drive, Root("C:").Join("A"), Parse("B"))
	require.NoError(t, err)
	assert.Equal(t, "B", got.Name)
	assert.True(t, loc.Equal(Root("C:").Join("A", "B")))

	_, _, err = Resolve(drive, Root("C:"), Parse("B"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveEmptyIsWorkingFolder(t *testing.T) {
	drive := fixture()
	w := Root("C:").Join("A")

	got, loc, err := Resolve(drive, w, Parse(""))
	require.NoError(t, err)
	assert.Same(t, drive.FindFolder("A"), got)
	assert.True(t, loc.Equal(w))
}

func TestResolveForeignDrive(t *testing.T) {
	drive := fixture()

	e := Parse("D:/A")
	assert.True(t, e.Foreign("C:"))
	assert.False(t, Parse("C:/A").Foreign("C:"))
	assert.False(t, Parse("A").Foreign("C:"))

	got, loc, err := Resolve(drive, Root("C:"), e)
	require.NoError(t, err)
	assert.Same(t, drive.FindFolder("A"), got)
	assert.Equal(t, `C:\A`, loc.String())
}

func TestResolveMissingComponent(t *testing.T) {
	drive := fixture()

	_, _, err := Resolve(drive, Root("C:"), Parse("A/X/B"))
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "The specified path does not exist.", err.Error())

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "X", nf.Component)
	assert.Equal(t, "A/X", nf.Missing())
}

func TestResolveDoesNotMatchFiles(t *testing.T) {
	drive := fixture()
	drive.CreateFile("notes.txt", "", ts)

	_, _, err := Resolve(drive, Root("C:"), Parse("notes.txt"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNavigateParent(t *testing.T) {
	drive := fixture()

	w, err := Navigate(drive, Root("C:"), "..")
	require.NoError(t, err)
	assert.True(t, w.IsRoot())
	assert.Equal(t, "C:", w.String())

	w, err = Navigate(drive, Root("C:").Join("A", "B"), "..")
	require.NoError(t, err)
	assert.Equal(t, `C:\A`, w.String())
}

func TestNavigateFailureKeepsLocation(t *testing.T) {
	drive := fixture()
	start := Root("C:").Join("A")

	w, err := Navigate(drive, start, "Nope")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.True(t, w.Equal(start))
}

func TestNearest(t *testing.T) {
	drive := fixture()
	w := Root("C:").Join("A", "B")

	assert.True(t, Nearest(drive, w).Equal(w))

	drive.FindFolder("A").DeleteFolder("B")
	assert.Equal(t, `C:\A`, Nearest(drive, w).String())

	drive.DeleteFolder("A")
	assert.True(t, Nearest(drive, w).IsRoot())
}

func TestWorking(t *testing.T) {
	root := Root("C:")
	w := root.Join("Docs", "Projects")

	assert.Equal(t, `C:\>`, root.Prompt())
	assert.Equal(t, `C:\Docs\Projects>`, w.Prompt())
	assert.Equal(t, []string{"Docs", "Projects"}, w.Folders())
	assert.Equal(t, 2, w.Depth())
	assert.Equal(t, "C:", w.Label())
	assert.True(t, w.Parent().Parent().Equal(root))
	assert.True(t, root.Parent().Equal(root))
	assert.Equal(t, `C:\Docs`, w.Truncate(1).String())
	assert.True(t, w.Truncate(5).Equal(w))

	// Join must not alias the parent's backing array
	p := w.Parent()
	x := p.Join("X")
	y := p.Join("Y")
	assert.Equal(t, `C:\Docs\X`, x.String())
	assert.Equal(t, `C:\Docs\Y`, y.String())
}
