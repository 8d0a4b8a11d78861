package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/HSL-2003/portfolio/internal/assets"
	"github.com/HSL-2003/portfolio/internal/portfolio"
)

// ErrMissingAssets is returned by check --strict when images do not resolve.
var ErrMissingAssets = errors.New("missing assets")

func newCheckCommand(a *app) *cobra.Command {
	var assetsDir string
	var strict bool
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the content and report images that would show placeholders",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if assetsDir == "" {
				assetsDir = a.cfg.AssetsDir
			}
			return runCheck(cmd, portfolio.Default(), assetsDir, strict)
		},
	}
	cmd.Flags().StringVar(&assetsDir, "assets", "", "directory holding images and the CV (overrides PORTFOLIO_ASSETS_DIR)")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when any image or the CV is missing")
	return cmd
}

func runCheck(cmd *cobra.Command, site portfolio.Site, dir string, strict bool) error {
	out := cmd.OutOrStdout()
	if err := site.Validate(); err != nil {
		return err
	}
	fmt.Fprintf(out, "content ok: %d certificates, %d projects, %d social links\n",
		len(site.Certificates), len(site.Projects), len(site.Socials))

	catalog := assets.NewCatalog(os.DirFS(dir))
	missing := assets.Missing(catalog, append(site.Images(), site.Profile.CV))
	if len(missing) == 0 {
		fmt.Fprintf(out, "all assets present in %s\n", dir)
		return nil
	}
	for _, name := range missing {
		fmt.Fprintf(out, "missing: %s\n", name)
	}
	if strict {
		return fmt.Errorf("%w: %d in %s", ErrMissingAssets, len(missing), dir)
	}
	return nil
}
