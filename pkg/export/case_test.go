package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slangeveld/fmu-dataio/pkg/fmuresults"
)

func TestCreateCase(t *testing.T) {
	casePath := t.TempDir()
	cc := &CreateCase{
		CasePath:    casePath,
		CaseName:    "testcase",
		User:        "tester",
		Description: []string{"first batch of sensitivities"},
	}

	path, err := cc.Run(testConfig())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(casePath, CaseMetadataPath), path)

	meta, err := ReadCaseMetadata(casePath)
	require.NoError(t, err)
	assert.Equal(t, fmuresults.ClassCase, meta.Class)
	assert.Equal(t, "testcase", meta.FMU.Case.Name)
	assert.Equal(t, "tester", meta.FMU.Case.User.ID)
	assert.NotEmpty(t, meta.FMU.Case.UUID)
	assert.Equal(t, []string{"first batch of sensitivities"}, meta.FMU.Case.Description)
	require.NotNil(t, meta.FMU.Model)
	assert.Equal(t, "ff", meta.FMU.Model.Name)
	require.Len(t, meta.TrackLog, 1)
	assert.Equal(t, fmuresults.EventCreated, meta.TrackLog[0].Event)

	require.NoError(t, meta.Validate())
}

func TestCreateCaseIsIdempotent(t *testing.T) {
	casePath := t.TempDir()
	cc := &CreateCase{CasePath: casePath, CaseName: "testcase", User: "tester"}

	first, err := cc.Run(testConfig())
	require.NoError(t, err)
	original, err := os.ReadFile(first)
	require.NoError(t, err)

	// A second run must not touch the established document.
	again := &CreateCase{CasePath: casePath, CaseName: "renamed", User: "someone-else"}
	second, err := again.Run(testConfig())
	require.NoError(t, err)
	assert.Equal(t, first, second)

	after, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, original, after)

	meta, err := ReadCaseMetadata(casePath)
	require.NoError(t, err)
	assert.Equal(t, "testcase", meta.FMU.Case.Name)
}

func TestCreateCaseRequiresInputs(t *testing.T) {
	cc := &CreateCase{CasePath: "", CaseName: "x"}
	_, err := cc.Run(testConfig())
	require.Error(t, err)

	cc = &CreateCase{CasePath: t.TempDir(), CaseName: ""}
	_, err = cc.Run(testConfig())
	require.Error(t, err)
}

func TestFiledataHelpers(t *testing.T) {
	t.Run("Slugify", func(t *testing.T) {
		cases := map[string]string{
			"TopWhatever":        "topwhatever",
			"Whatever Top":       "whatever_top",
			"volantis gp. top":   "volantis_gp._top",
			"a/b\\c":             "a_b_c",
			"  Spaced  ":         "spaced",
			"weird*chars?":       "weirdchars",
			"UPPER_lower-mix.ed": "upper_lower-mix.ed",
		}
		for in, want := range cases {
			if got := slugify(in); got != want {
				t.Errorf("slugify(%q) = %q, want %q", in, got, want)
			}
		}
	})

	t.Run("Relative Path", func(t *testing.T) {
		p, err := relativePath("maps", "", "TopWhatever", "ds_extract", ".gri", false)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("share", "results", "maps", "topwhatever--ds_extract.gri"), p)

		p, err = relativePath("maps", "extra", "TopWhatever", "", ".gri", true)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("share", "observations", "maps", "extra", "topwhatever.gri"), p)

		_, err = relativePath("maps", "", "***", "", ".gri", false)
		require.Error(t, err, "names that slug to nothing are rejected")
	})

	t.Run("Metadata Sibling Path", func(t *testing.T) {
		got := metadataPath(filepath.Join("share", "results", "maps", "top.gri"))
		assert.Equal(t, filepath.Join("share", "results", "maps", ".top.gri.yml"), got)
	})

	t.Run("Checksum", func(t *testing.T) {
		sum := checksumMD5([]byte("hello"))
		assert.Len(t, sum, 32)
		assert.Equal(t, "5d41402abc4b2a76b9719d911017c592", sum)
	})
}
