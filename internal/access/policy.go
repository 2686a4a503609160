package access

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Policy declares how one contribution's videos are gated.
// Policies are loaded at startup from YAML files and fingerprinted so
// operators can tell which revision a running process holds.
type Policy struct {
	ContributionID     string
	RequiresEnrollment *bool // nil defers to the catalog column
	FreePreviewVideos  map[string]struct{}
	Fingerprint        string // SHA-256 of the raw YAML file; computed at load time
}

// IsFreePreview reports whether videoID is declared watchable without enrollment.
func (p *Policy) IsFreePreview(videoID string) bool {
	_, ok := p.FreePreviewVideos[videoID]
	return ok
}

// rawPolicy is the on-disk YAML shape.
type rawPolicy struct {
	ContributionID     string   `yaml:"contribution_id"`
	RequiresEnrollment *bool    `yaml:"requires_enrollment"`
	FreePreviewVideos  []string `yaml:"free_preview_videos"`
}

// PolicySource looks up the policy for a contribution.
type PolicySource interface {
	Lookup(contributionID string) (*Policy, bool)
}

// FileSystemPolicyRepository loads access policies from *.yaml files in a
// directory. Each file holds exactly one policy. Policies are loaded once and
// never reloaded.
type FileSystemPolicyRepository struct {
	dir      string
	policies map[string]Policy // keyed by ContributionID
}

// NewFileSystemPolicyRepository eagerly loads every policy in dir.
// A missing directory yields an empty repository.
func NewFileSystemPolicyRepository(dir string) (*FileSystemPolicyRepository, error) {
	repo := &FileSystemPolicyRepository{
		dir:      dir,
		policies: make(map[string]Policy),
	}
	if dir == "" {
		return repo, nil
	}
	if err := repo.load(); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *FileSystemPolicyRepository) load() error {
	info, err := os.Stat(r.dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("access policy dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("access policy path %q is not a directory", r.dir)
	}

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return fmt.Errorf("reading access policy dir: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() || (!strings.HasSuffix(e.Name(), ".yaml") && !strings.HasSuffix(e.Name(), ".yml")) {
			continue
		}

		path := filepath.Join(r.dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading policy file %s: %w", path, err)
		}

		var raw rawPolicy
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("parsing policy file %s: %w", path, err)
		}
		if raw.ContributionID == "" {
			continue // skip empty / comment-only files
		}

		if _, exists := r.policies[raw.ContributionID]; exists {
			return fmt.Errorf("policy %q: duplicate contribution_id (check multiple YAML files)", raw.ContributionID)
		}

		previews := make(map[string]struct{}, len(raw.FreePreviewVideos))
		for _, videoID := range raw.FreePreviewVideos {
			if videoID == "" {
				return fmt.Errorf("policy %q: free_preview_videos must not contain empty ids", raw.ContributionID)
			}
			previews[videoID] = struct{}{}
		}

		r.policies[raw.ContributionID] = Policy{
			ContributionID:     raw.ContributionID,
			RequiresEnrollment: raw.RequiresEnrollment,
			FreePreviewVideos:  previews,
			Fingerprint:        fmt.Sprintf("%x", sha256.Sum256(data)),
		}
	}
	return nil
}

// Lookup returns the policy for contributionID, if one was loaded.
func (r *FileSystemPolicyRepository) Lookup(contributionID string) (*Policy, bool) {
	p, ok := r.policies[contributionID]
	if !ok {
		return nil, false
	}
	return &p, true
}

// Len returns the number of loaded policies.
func (r *FileSystemPolicyRepository) Len() int {
	return len(r.policies)
}

// ContributionIDs returns the ids of every loaded policy, sorted.
func (r *FileSystemPolicyRepository) ContributionIDs() []string {
	ids := make([]string, 0, len(r.policies))
	for id := range r.policies {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
