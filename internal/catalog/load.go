package catalog

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-pathfinder/internal/schemas"
	"github.com/jonathan/career-pathfinder/internal/types"
)

//go:embed data/*.json
var embedded embed.FS

// File names shared by the embedded set and CATALOG_DIR.
const (
	CareersFile   = "careers.json"
	SkillsFile    = "skills.json"
	InterestsFile = "interests.json"
	ResourcesFile = "resources.json"
)

type careersDoc struct {
	Careers []types.Career `json:"careers"`
}

type skillsDoc struct {
	Skills   []types.Skill       `json:"skills"`
	Synonyms map[string][]string `json:"synonyms"`
}

type interestsDoc struct {
	Interests []types.Interest `json:"interests"`
}

// Load builds the catalog from the embedded datasets.
func Load(ctx context.Context) (*Catalog, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded catalog: %w", err)
	}
	return load(ctx, sub, sub)
}

// LoadDir builds the catalog from dataset files in dir. Schemas always come from the embedded set.
func LoadDir(ctx context.Context, dir string) (*Catalog, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded schemas: %w", err)
	}
	return load(ctx, os.DirFS(dir), sub)
}

func load(ctx context.Context, files, schemaFS fs.FS) (*Catalog, error) {
	var (
		careers   careersDoc
		skills    skillsDoc
		interests interestsDoc
		resources types.ResourceCatalog
	)

	g, gCtx := errgroup.WithContext(ctx)
	for name, dst := range map[string]any{
		CareersFile:   &careers,
		SkillsFile:    &skills,
		InterestsFile: &interests,
		ResourcesFile: &resources,
	} {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			return decodeFile(files, schemaFS, name, dst)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return New(Data{
		Careers:   careers.Careers,
		Skills:    skills.Skills,
		Synonyms:  skills.Synonyms,
		Interests: interests.Interests,
		Resources: resources,
	})
}

// decodeFile validates name against its schema and decodes it into dst.
func decodeFile(files, schemaFS fs.FS, name string, dst any) error {
	content, err := fs.ReadFile(files, name)
	if err != nil {
		return &LoadError{Path: name, Cause: err}
	}
	schema, err := fs.ReadFile(schemaFS, schemaName(name))
	if err != nil {
		return &LoadError{Path: schemaName(name), Cause: err}
	}
	if err := schemas.Validate(name, schema, content); err != nil {
		return &LoadError{Path: name, Cause: err}
	}
	if err := json.Unmarshal(content, dst); err != nil {
		return &LoadError{Path: name, Cause: err}
	}
	return nil
}

func schemaName(file string) string {
	return strings.TrimSuffix(file, ".json") + ".schema.json"
}

// Embedded returns the raw bytes of an embedded dataset file.
func Embedded(name string) ([]byte, error) {
	return embedded.ReadFile("data/" + name)
}
