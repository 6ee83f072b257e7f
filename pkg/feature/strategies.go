package feature

import (
	"context"
	"errors"
	"hash/fnv"
	"slices"
)

// AlwaysStrategy is a strategy that always returns the same value.
type AlwaysStrategy struct {
	Value bool
}

// Evaluate returns the configured value for all contexts.
func (s *AlwaysStrategy) Evaluate(ctx context.Context) (bool, error) {
	return s.Value, nil
}

// NewAlwaysOnStrategy creates a strategy that enables the feature for all callers.
func NewAlwaysOnStrategy() Strategy {
	return &AlwaysStrategy{Value: true}
}

// NewAlwaysOffStrategy creates a strategy that disables the feature for all callers.
func NewAlwaysOffStrategy() Strategy {
	return &AlwaysStrategy{Value: false}
}

// TargetedStrategy enables features for specific users, groups, or a
// percentage of the user base.
type TargetedStrategy struct {
	Criteria TargetCriteria

	userIDExtractor     UserIDExtractor
	userGroupsExtractor UserGroupsExtractor
}

// Evaluate determines if a feature should be enabled based on the context
// and criteria. Deny list wins over everything, then allow list, then
// targeted users, groups, and finally percentage rollout.
func (s *TargetedStrategy) Evaluate(ctx context.Context) (bool, error) {
	if s.isEmptyCriteria() {
		return false, ErrInvalidStrategy
	}

	var userID string
	if s.userIDExtractor != nil {
		userID = s.userIDExtractor(ctx)
	}

	if s.isInDenyList(userID) {
		return false, nil
	}

	if s.isInAllowList(userID) {
		return true, nil
	}

	if s.isTargetedUser(userID) {
		return true, nil
	}

	if s.isInTargetedGroup(ctx) {
		return true, nil
	}

	if s.Criteria.Percentage != nil {
		return s.evaluatePercentage(userID)
	}

	return false, nil
}

func (s *TargetedStrategy) isEmptyCriteria() bool {
	return s.Criteria.UserIDs == nil && s.Criteria.Groups == nil &&
		s.Criteria.Percentage == nil && s.Criteria.AllowList == nil &&
		s.Criteria.DenyList == nil
}

func (s *TargetedStrategy) isInDenyList(userID string) bool {
	if len(s.Criteria.DenyList) == 0 {
		return false
	}
	// Unknown callers fail safe when a deny list exists.
	if userID == "" {
		return true
	}
	return slices.Contains(s.Criteria.DenyList, userID)
}

func (s *TargetedStrategy) isInAllowList(userID string) bool {
	return len(s.Criteria.AllowList) > 0 && userID != "" &&
		slices.Contains(s.Criteria.AllowList, userID)
}

func (s *TargetedStrategy) isTargetedUser(userID string) bool {
	return len(s.Criteria.UserIDs) > 0 && userID != "" &&
		slices.Contains(s.Criteria.UserIDs, userID)
}

func (s *TargetedStrategy) isInTargetedGroup(ctx context.Context) bool {
	if len(s.Criteria.Groups) == 0 || s.userGroupsExtractor == nil {
		return false
	}

	userGroups := s.userGroupsExtractor(ctx)
	for _, userGroup := range userGroups {
		if slices.Contains(s.Criteria.Groups, userGroup) {
			return true
		}
	}
	return false
}

// evaluatePercentage buckets callers deterministically by FNV-1a hash of the
// user id, so the same caller always lands on the same side of the rollout.
func (s *TargetedStrategy) evaluatePercentage(userID string) (bool, error) {
	percentage := *s.Criteria.Percentage
	if percentage < 0 || percentage > 100 {
		return false, errors.Join(ErrInvalidStrategy,
			errors.New("percentage must be between 0 and 100"))
	}

	if percentage == 0 {
		return false, nil
	}
	if percentage == 100 {
		return true, nil
	}
	// Percentage rollouts need a stable caller identity.
	if userID == "" {
		return false, nil
	}

	hash := fnv.New32a()
	hash.Write([]byte(userID))
	return int(hash.Sum32()%100) < percentage, nil
}

// TargetedStrategyOption configures a TargetedStrategy.
type TargetedStrategyOption func(*TargetedStrategy)

// WithUserIDExtractor sets the user id extractor for the strategy.
func WithUserIDExtractor(extractor UserIDExtractor) TargetedStrategyOption {
	return func(s *TargetedStrategy) {
		s.userIDExtractor = extractor
	}
}

// WithUserGroupsExtractor sets the user groups extractor for the strategy.
func WithUserGroupsExtractor(extractor UserGroupsExtractor) TargetedStrategyOption {
	return func(s *TargetedStrategy) {
		s.userGroupsExtractor = extractor
	}
}

// NewTargetedStrategy creates a strategy based on targeting criteria.
func NewTargetedStrategy(criteria TargetCriteria, opts ...TargetedStrategyOption) Strategy {
	s := &TargetedStrategy{Criteria: criteria}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
