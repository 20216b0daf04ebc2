package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/viveksalimath/Lemo.ai/internal/manifest"
	"github.com/viveksalimath/Lemo.ai/internal/paths"
)

var validateCmd = &cobra.Command{
	Use:   "validate <skill-dir>",
	Short: "Validate a skill manifest and its configs",
	Long: `Check a skill directory against the bridge schemas: the skill manifest
(skill.json) and every language config under config/.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reports, err := validateSkillDir(args[0])
		if err != nil {
			return err
		}
		if failed := printReports(cmd.OutOrStdout(), reports); failed > 0 {
			return fmt.Errorf("%d of %d files failed validation", failed, len(reports))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// fileReport is the validation outcome of one skill file.
type fileReport struct {
	Path   string
	Result *manifest.ValidationResult
}

// validateSkillDir validates the manifest and configs of a skill directory.
func validateSkillDir(dir string) ([]fileReport, error) {
	mpath, err := manifest.FindSkillManifest(dir)
	if err != nil {
		return nil, err
	}
	result, err := manifest.ValidateFile(manifest.SchemaSkill, mpath)
	if err != nil {
		return nil, err
	}
	reports := []fileReport{{Path: mpath, Result: result}}

	configs, err := configFiles(filepath.Join(dir, paths.ConfigDir))
	if err != nil {
		return nil, err
	}
	for _, p := range configs {
		result, err := manifest.ValidateFile(manifest.SchemaConfig, p)
		if err != nil {
			return nil, err
		}
		reports = append(reports, fileReport{Path: p, Result: result})
	}
	return reports, nil
}

// configFiles lists the language config files of a skill, sorted.
func configFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config directory: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".json", ".yaml", ".yml":
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// printReports writes one line per file, plus its issues, and returns how
// many files are invalid.
func printReports(w io.Writer, reports []fileReport) int {
	failed := 0
	for _, r := range reports {
		if r.Result.Valid {
			fmt.Fprintf(w, "ok    %s\n", r.Path)
			continue
		}
		failed++
		fmt.Fprintf(w, "FAIL  %s (%s)\n", r.Path, r.Result.Summary())
		for _, issue := range r.Result.Issues {
			path := issue.Path
			if path == "" {
				path = "/"
			}
			fmt.Fprintf(w, "      %s: %s\n", path, issue.Message)
		}
	}
	return failed
}
