package playbook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountPhases(t *testing.T) {
	sop := `Intro text.

### Phase 1: Research
do research

### Phase 2: Draft
write

Not a marker: ### Phase 3: inline
### Phase 3: Deliver
done`
	assert.Equal(t, 3, CountPhases(sop))
	assert.Equal(t, 0, CountPhases("no phases here"))
}

func TestTotalSteps(t *testing.T) {
	structured := &Playbook{Steps: []Step{{Name: "a"}, {Name: "b"}}}
	assert.Equal(t, 2, structured.TotalSteps())
	assert.False(t, structured.Conversational())

	phased := &Playbook{SOP: "### Phase 1: x\n### Phase 2: y\n"}
	assert.Equal(t, 2, phased.TotalSteps())
	assert.True(t, phased.Conversational())

	conversational := &Playbook{SOP: "just prose"}
	assert.Equal(t, 1, conversational.TotalSteps())
}

func TestRegistry_GetAndValidity(t *testing.T) {
	r := NewRegistry(Builtins())

	p, err := r.Get("seo_article")
	require.NoError(t, err)
	assert.Equal(t, TierSoftWrite, p.Tier)
	assert.Equal(t, 4, p.TotalSteps())

	_, err = r.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.True(t, r.IsValidPack("daily_planning"))
	assert.True(t, r.IsValidPack(PackIntentExtraction))
	assert.True(t, r.IsValidPack(PackSemanticSeeds))
	assert.False(t, r.IsValidPack("unregistered_pack"))
}

func TestRegistry_BuiltinTiers(t *testing.T) {
	r := NewRegistry(Builtins())

	wp, err := r.Get("wp_publish")
	require.NoError(t, err)
	assert.Equal(t, TierExternalWrite, wp.Tier)

	habit, err := r.Get("habit_learning")
	require.NoError(t, err)
	assert.True(t, habit.Background)
	assert.Equal(t, KindCapability, habit.Kind)
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry(nil)
	r.Register(&Playbook{Code: "custom", Tier: TierReadonly})
	assert.True(t, r.Has("custom"))
	assert.Equal(t, []string{"custom"}, r.Codes())
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	pack := `code: newsletter
title: Newsletter
sop: |
  You draft the weekly newsletter.

  ### Phase 1: Collect
  Gather items.

  ### Phase 2: Draft
  Write the issue.
tier: soft_write
kind: playbook
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "newsletter.yaml"), []byte(pack), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	r := NewRegistry(Builtins())
	loaded, err := r.LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded)

	p, err := r.Get("newsletter")
	require.NoError(t, err)
	assert.Equal(t, 2, p.TotalSteps())
	assert.Equal(t, TierSoftWrite, p.Tier)
}

func TestLoadDir_RejectsIncompletePack(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("title: no code"), 0o644))

	r := NewRegistry(Builtins())
	_, err := r.LoadDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no code")
}
