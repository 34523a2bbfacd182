package routine

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/rafin/routine-genius/pkg/model"
)

// Generator enumerates every conflict-free routine for a set of selected
// courses. The catalog is read-only during a run; all search state lives
// on the recursion stack, so a Generator is safe to reuse sequentially.
type Generator struct {
	catalog model.Catalog
	cfg     model.SearchConfig
	logger  *zap.Logger
}

// NewGenerator binds a catalog and a normalized copy of the search config.
func NewGenerator(catalog model.Catalog, cfg model.SearchConfig, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg.Normalize()
	return &Generator{catalog: catalog, cfg: cfg, logger: logger}
}

// Generate runs the exhaustive backtracking search and returns every valid
// routine, uniformly shuffled. The shuffle is presentation variety only;
// it never affects which routines exist. An empty result is a valid
// outcome, not an error.
func (g *Generator) Generate() []model.Routine {
	candidates := make([][]*model.Section, 0, len(g.cfg.Courses))
	for _, code := range g.cfg.Courses {
		eligible := EligibleSections(g.catalog.Sections(code), g.cfg.PreferenceFor(code), &g.cfg)
		// A course with nothing left to try means no routine can exist.
		if len(eligible) == 0 {
			g.logger.Info("course has no eligible sections", zap.String("course", code))
			return nil
		}
		candidates = append(candidates, eligible)
	}

	var results []model.Routine
	current := make([]*model.Section, 0, len(candidates))
	g.backtrack(candidates, current, &results)

	rand.Shuffle(len(results), func(i, j int) {
		results[i], results[j] = results[j], results[i]
	})

	g.logger.Info("search finished",
		zap.Int("courses", len(g.cfg.Courses)),
		zap.Int("routines", len(results)))
	return results
}

// backtrack tries every eligible section of the course at depth len(current),
// pruning on time conflicts and the per-day course limit.
func (g *Generator) backtrack(candidates [][]*model.Section, current []*model.Section, results *[]model.Routine) {
	if len(current) == len(candidates) {
		days := len(model.CoursesPerDay(current))
		if days >= g.cfg.MinDays && days <= g.cfg.MaxDays {
			routine := make(model.Routine, len(current))
			copy(routine, current)
			*results = append(*results, routine)
		}
		return
	}
	for _, candidate := range candidates[len(current)] {
		if g.rejects(current, candidate) {
			continue
		}
		g.backtrack(candidates, append(current, candidate), results)
	}
}

// rejects checks a candidate extension against the partial routine.
func (g *Generator) rejects(current []*model.Section, candidate *model.Section) bool {
	for _, placed := range current {
		if candidate.ConflictsWith(placed) {
			return true
		}
	}
	perDay := model.CoursesPerDay(append(current[:len(current):len(current)], candidate))
	for _, count := range perDay {
		if count > g.cfg.MaxPerDay {
			return true
		}
	}
	return false
}
