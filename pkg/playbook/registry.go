package playbook

import (
	"fmt"
	"sort"
	"sync"
)

// Special-case packs that are always valid proposals even though they are
// not regular catalog entries.
const (
	PackIntentExtraction = "intent_extraction"
	PackSemanticSeeds    = "semantic_seeds"
)

// ErrNotFound is returned when a pack code is not in the registry.
var ErrNotFound = fmt.Errorf("playbook not found")

// Registry stores the pack catalog with thread-safe access.
type Registry struct {
	mu    sync.RWMutex
	packs map[string]*Playbook
}

// NewRegistry builds a registry over the given packs.
func NewRegistry(packs map[string]*Playbook) *Registry {
	copied := make(map[string]*Playbook, len(packs))
	for k, v := range packs {
		copied[k] = v
	}
	return &Registry{packs: copied}
}

// Get retrieves a playbook by pack code.
func (r *Registry) Get(code string) (*Playbook, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.packs[code]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, code)
	}
	return p, nil
}

// Has checks whether a pack code is registered.
func (r *Registry) Has(code string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.packs[code]
	return ok
}

// IsValidPack reports whether a proposal for this code may proceed.
// Special-case packs are always valid.
func (r *Registry) IsValidPack(code string) bool {
	if code == PackIntentExtraction || code == PackSemanticSeeds {
		return true
	}
	return r.Has(code)
}

// Register adds or replaces a pack.
func (r *Registry) Register(p *Playbook) {
	r.mu.Lock()
	r.packs[p.Code] = p
	r.mu.Unlock()
}

// Codes returns the sorted pack codes.
func (r *Registry) Codes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	codes := make([]string, 0, len(r.packs))
	for code := range r.packs {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Builtins returns the built-in pack catalog.
func Builtins() map[string]*Playbook {
	packs := []*Playbook{
		{
			Code:        "daily_planning",
			Title:       "Daily planning",
			Description: "Summarize workspace state and propose a plan for today.",
			Tier:        TierReadonly,
			Kind:        KindPlaybook,
			SOP: `You prepare a daily plan for the workspace owner.

### Phase 1: Review
Inspect recent activity, open tasks and unfinished drafts.

### Phase 2: Prioritize
Order the candidate items by impact and urgency.

### Phase 3: Plan
Produce a short, actionable plan for the day.`,
		},
		{
			Code:        "seo_article",
			Title:       "SEO article",
			Description: "Research keywords and draft a search-optimized article.",
			Tier:        TierSoftWrite,
			Kind:        KindPlaybook,
			SOP: `You research and draft a search-optimized article.

### Phase 1: Research
Use sem- tools to collect keyword volumes and competing content.

### Phase 2: Outline
Propose a structure with headings mapped to keywords.

### Phase 3: Draft
Write the article following the outline.

### Phase 4: Deliver
Save the draft with filesystem_write_file and emit the structured output.`,
		},
		{
			Code:        "wp_publish",
			Title:       "WordPress publish",
			Description: "Publish an approved draft to the connected WordPress site.",
			Tier:        TierExternalWrite,
			Kind:        KindPlaybook,
			SOP: `You publish an approved draft through the wp-hub tools.

### Phase 1: Verify
Confirm the draft was approved and collect its content.

### Phase 2: Publish
Create the post via wp_publish_post and report the resulting URL.`,
		},
		{
			Code:        "habit_learning",
			Title:       "Habit learning",
			Description: "Observe completed executions and update user habit models.",
			Tier:        TierReadonly,
			Kind:        KindCapability,
			Background:  true,
			SOP:         "Observe the finished execution and summarize recurring user preferences.",
		},
		{
			Code:        "intent_extraction",
			Title:       "Intent extraction",
			Description: "Derive task proposals from an incoming user message.",
			Tier:        TierReadonly,
			Kind:        KindCapability,
			Background:  true,
			SOP:         "Read the user message and emit the task proposals it implies, one per actionable intent.",
		},
		{
			Code:        "semantic_seeds",
			Title:       "Semantic seeds",
			Description: "Extract reusable facts and preferences from workspace content.",
			Tier:        TierReadonly,
			Kind:        KindCapability,
			Background:  true,
			SOP:         "Scan the given content and record durable facts, entities and preferences worth remembering.",
		},
		{
			Code:        "podcast_episode",
			Title:       "Podcast episode",
			Description: "Plan and script a podcast episode from workspace material.",
			Tier:        TierSoftWrite,
			Kind:        KindPlaybook,
			LongRunning: true,
			SOP: `You plan and script a podcast episode.

### Phase 1: Collect
Gather source material from the workspace.

### Phase 2: Script
Write the episode script with speaker notes.

### Phase 3: Deliver
Save the script and emit the structured output.`,
		},
	}

	out := make(map[string]*Playbook, len(packs))
	for _, p := range packs {
		out[p.Code] = p
	}
	return out
}
