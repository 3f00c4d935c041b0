package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nursen/oriki/internal/audio"
	"github.com/nursen/oriki/internal/quiz"
	"github.com/nursen/oriki/internal/ui"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a poem and affirmations from a quiz submission",
	Long: "Reads a quiz submission (the same JSON the web frontend posts) from a file " +
		"or stdin and prints the generated poem, affirmations and themes.",
	Example: `  oriki generate -f submission.json
  oriki generate -f - --format yaml < submission.json
  oriki generate -f submission.json --audio oriki.mp3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		format, _ := cmd.Flags().GetString("format")
		audioOut, _ := cmd.Flags().GetString("audio")
		showThemes, _ := cmd.Flags().GetBool("themes")

		if format != "text" && format != "json" && format != "yaml" {
			return fmt.Errorf("unsupported format %q (want text, json or yaml)", format)
		}

		sub, err := readSubmission(cmd.InOrStdin(), file)
		if err != nil {
			return err
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		ctx := commandContext(cmd)
		rt, err := newRuntime(ctx, cfg)
		if err != nil {
			return err
		}
		defer rt.Close()

		res, err := rt.pipeline.Run(ctx, sub)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if format == "text" {
			fmt.Fprintln(out, ui.RenderResult(res, showThemes))
		} else if err := writeStructured(out, format, res); err != nil {
			return err
		}

		if audioOut == "" {
			return nil
		}
		clip, err := rt.renderer.Render(ctx, audio.Script(res.Poem.Lines, res.Affirmations.Affirmations), "")
		if err != nil {
			return fmt.Errorf("render audio: %w", err)
		}
		if err := os.WriteFile(audioOut, clip.MP3, 0o644); err != nil {
			return fmt.Errorf("write audio: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (~%.1fs, voice %s)\n", audioOut, clip.DurationSeconds, clip.Voice)
		return nil
	},
}

// readSubmission decodes a submission from path, or from stdin when path
// is "-".
func readSubmission(stdin io.Reader, path string) (quiz.Submission, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return quiz.Submission{}, fmt.Errorf("open submission: %w", err)
		}
		defer f.Close()
		r = f
	}

	var sub quiz.Submission
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&sub); err != nil {
		return quiz.Submission{}, fmt.Errorf("decode submission: %w", err)
	}
	return sub, nil
}

func init() {
	generateCmd.Flags().StringP("file", "f", "", "Submission JSON file, or - for stdin")
	generateCmd.Flags().StringP("format", "o", "text", "Output format: text, json or yaml")
	generateCmd.Flags().String("audio", "", "Also render the poem and affirmations to this MP3 file")
	generateCmd.Flags().Bool("themes", false, "Include extracted themes in text output")
	generateCmd.Flags().Bool("concurrent", false, "Run poem and affirmation stages in parallel")
	generateCmd.Flags().Bool("strict", false, "Reject generated output outside the expected list sizes")
	_ = generateCmd.MarkFlagRequired("file")
}
