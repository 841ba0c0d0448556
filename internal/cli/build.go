package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"

	"prism-backend/internal/portfolio"
	"prism-backend/internal/prompt"
	"prism-backend/internal/shared/config"
	"prism-backend/internal/shared/util"
)

const cliSessionID = "cli"

type buildOptions struct {
	resume string
	out    string
	style  prompt.StyleParameters
}

func newBuildCmd(load func() config.Config, build appBuilder) *cobra.Command {
	var opts buildOptions
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Generate a portfolio package from a PDF resume",
		Long: `Generate a portfolio package from a PDF resume and write the zip to --out.

Example:
  prism build --resume resume.pdf --title "Jane Doe" --ethos "Minimalist Dark" --out ./dist`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := build(load())
			if err != nil {
				return pkgerrors.Wrap(err, "bootstrap build")
			}
			_, err = runBuild(cmd.Context(), app.PortfolioService, opts, cmd.OutOrStdout())
			return err
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.resume, "resume", "", "Path to the PDF resume")
	f.StringVar(&opts.out, "out", ".", "Directory to write the zip into")
	f.StringVar(&opts.style.Title, "title", prompt.DefaultTitle, "Portfolio title")
	f.StringVar(&opts.style.Ethos, "ethos", prompt.EthosFuturisticGlass, "Design ethos: Futuristic Glass, Minimalist Dark or Corporate Neo")
	f.StringVar(&opts.style.AccentColor, "accent", prompt.DefaultAccentColor, "Accent color as #rrggbb")
	f.StringVar(&opts.style.Instructions, "instructions", "", "Extra instructions for the designer")
	_ = cmd.MarkFlagRequired("resume")
	return cmd
}

// runBuild drives the pipeline once and returns the written archive path.
func runBuild(ctx context.Context, svc *portfolio.Service, opts buildOptions, stdout io.Writer) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	data, err := os.ReadFile(opts.resume)
	if err != nil {
		return "", pkgerrors.Wrapf(err, "read resume %s", opts.resume)
	}

	res, err := svc.Upload(ctx, cliSessionID, filepath.Base(opts.resume), data)
	if err != nil {
		if errors.Is(err, portfolio.ErrExtraction) {
			return "", pkgerrors.New(portfolio.ExtractionMessage(err))
		}
		return "", pkgerrors.Wrap(err, "upload")
	}
	message, detail := portfolio.UploadMessages(res.Characters)
	fmt.Fprintln(stdout, message)
	if detail != "" {
		fmt.Fprintln(stdout, detail)
	}

	gen, err := svc.Generate(ctx, cliSessionID, opts.style)
	if err != nil {
		return "", pkgerrors.New(generateMessage(svc, err))
	}

	archive, err := svc.Download(ctx, cliSessionID)
	if err != nil {
		return "", pkgerrors.Wrap(err, "download")
	}
	if err := os.MkdirAll(opts.out, 0o755); err != nil {
		return "", pkgerrors.Wrapf(err, "create %s", opts.out)
	}
	path := filepath.Join(opts.out, util.SanitizeFileName(archive.Name, "Prism_Portfolio.zip"))
	if err := os.WriteFile(path, archive.Data, 0o644); err != nil {
		return "", pkgerrors.Wrapf(err, "write %s", path)
	}

	fmt.Fprintln(stdout, portfolio.MsgComplete)
	fmt.Fprintf(stdout, "Wrote %s (%d bytes: %v)\n", path, gen.SizeBytes, gen.Files)
	return path, nil
}

func generateMessage(svc *portfolio.Service, err error) string {
	switch {
	case errors.Is(err, portfolio.ErrMissingCredential):
		return portfolio.MissingCredentialMessage(svc.CredentialEnv)
	case errors.Is(err, portfolio.ErrNoResumeText):
		return portfolio.MsgNoResume
	case errors.Is(err, portfolio.ErrParseFailed):
		return portfolio.MsgParseFailed
	case errors.Is(err, portfolio.ErrGenerationFailed):
		return portfolio.GenerationFailedMessage(err)
	default:
		return err.Error()
	}
}
