package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/cmsdash/internal/domain"
	domcomp "github.com/kailas-cloud/cmsdash/internal/domain/component"
	dompage "github.com/kailas-cloud/cmsdash/internal/domain/page"
)

// seedFile is the YAML layout accepted by the seed command. Pages refer to
// components by their seed key, since ids are only known after creation.
type seedFile struct {
	Components []seedComponent `yaml:"components"`
	Pages      []seedPage      `yaml:"pages"`
}

type seedComponent struct {
	Key           string `yaml:"key"`
	domcomp.Draft `yaml:",inline"`
}

type seedPage struct {
	dompage.Draft `yaml:",inline"`
	Components    []string `yaml:"components"`
}

type componentCreator interface {
	Create(ctx context.Context, d domcomp.Draft) (domcomp.Component, error)
}

type pageCreator interface {
	Create(ctx context.Context, d dompage.Draft) (dompage.Page, error)
}

type seedResult struct {
	Components int
	Pages      int
	Skipped    int
}

func newSeedCmd(opts *rootOptions) *cobra.Command {
	var (
		file         string
		skipExisting bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create components and pages from a YAML file",
		Example: `  cmsdash seed --file seed.yaml
  cmsdash seed --file seed.yaml --skip-existing`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := os.Open(filepath.Clean(file))
			if err != nil {
				return fmt.Errorf("open seed file: %w", err)
			}
			defer f.Close()

			a, err := newApp(cmd.Context(), opts.env)
			if err != nil {
				return err
			}
			defer a.close()

			res, err := seed(cmd.Context(), f, a.components, a.pages, skipExisting)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d components, %d pages (%d skipped)\n",
				res.Components, res.Pages, res.Skipped)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "seed.yaml", "seed file path")
	cmd.Flags().BoolVar(&skipExisting, "skip-existing", false, "skip pages whose slug is already taken")
	return cmd
}

// seed creates every component, then every page with its component keys
// resolved to the new ids.
func seed(
	ctx context.Context, r io.Reader, comps componentCreator, pages pageCreator, skipExisting bool,
) (seedResult, error) {
	var in seedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&in); err != nil && !errors.Is(err, io.EOF) {
		return seedResult{}, fmt.Errorf("parse seed file: %w", err)
	}

	var res seedResult
	ids := make(map[string]string, len(in.Components))
	for i, sc := range in.Components {
		if sc.Key != "" {
			if _, dup := ids[sc.Key]; dup {
				return res, fmt.Errorf("components[%d]: duplicate key %q", i, sc.Key)
			}
		}
		c, err := comps.Create(ctx, sc.Draft)
		if err != nil {
			return res, fmt.Errorf("components[%d] %q: %w", i, sc.Name, err)
		}
		if sc.Key != "" {
			ids[sc.Key] = c.ID()
		}
		res.Components++
	}

	for i, sp := range in.Pages {
		d := sp.Draft
		for _, key := range sp.Components {
			id, ok := ids[key]
			if !ok {
				return res, fmt.Errorf("pages[%d] %q: unknown component key %q", i, d.Title, key)
			}
			d.ComponentIDs = append(d.ComponentIDs, id)
		}
		if _, err := pages.Create(ctx, d); err != nil {
			if skipExisting && errors.Is(err, domain.ErrAlreadyExists) {
				res.Skipped++
				continue
			}
			return res, fmt.Errorf("pages[%d] %q: %w", i, d.Title, err)
		}
		res.Pages++
	}
	return res, nil
}
