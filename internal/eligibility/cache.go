package eligibility

import (
	"fmt"
	"sync"

	"glassesfinder/pkg/types"
)

// CachedAssessor memoizes successful assessments keyed by the input triple.
// Tier classification is deterministic, so repeated submissions of the same
// household (a browser refresh of the results page, mostly) skip the
// recomputation. Validation failures are not cached.
type CachedAssessor struct {
	assessor *Assessor

	mu      sync.Mutex
	results map[string]*types.EligibilityResult
}

func NewCachedAssessor(assessor *Assessor) *CachedAssessor {
	return &CachedAssessor{
		assessor: assessor,
		results:  make(map[string]*types.EligibilityResult),
	}
}

func (c *CachedAssessor) Assess(householdSize, annualIncome int, zipCode string) (*types.EligibilityResult, error) {
	key := fmt.Sprintf("%d|%d|%s", householdSize, annualIncome, zipCode)

	c.mu.Lock()
	if cached, ok := c.results[key]; ok {
		c.mu.Unlock()
		return cached, nil
	}
	c.mu.Unlock()

	result, err := c.assessor.Assess(householdSize, annualIncome, zipCode)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.results[key] = result
	c.mu.Unlock()

	return result, nil
}

// Len reports how many distinct assessments are cached.
func (c *CachedAssessor) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.results)
}
