package testutil

import (
	"context"
	"sync"

	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type followKey struct{ follower, following primitive.ObjectID }

// FollowRepo is an in-memory FollowRepository
type FollowRepo struct {
	mu      sync.Mutex
	follows map[followKey]bool
}

func NewFollowRepo() *FollowRepo {
	return &FollowRepo{follows: map[followKey]bool{}}
}

func (r *FollowRepo) Follow(_ context.Context, followerID, followingID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.follows[followKey{followerID, followingID}] = true
	return nil
}

func (r *FollowRepo) Unfollow(_ context.Context, followerID, followingID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.follows, followKey{followerID, followingID})
	return nil
}

func (r *FollowRepo) IsFollowing(_ context.Context, followerID, followingID primitive.ObjectID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.follows[followKey{followerID, followingID}], nil
}

func (r *FollowRepo) GetFollowCounts(_ context.Context, userID primitive.ObjectID) (*models.FollowCounts, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := &models.FollowCounts{}
	for k := range r.follows {
		if k.following == userID {
			counts.Followers++
		}
		if k.follower == userID {
			counts.Following++
		}
	}
	return counts, nil
}

// PlanRepo is an in-memory LearningPlanRepository
type PlanRepo struct {
	mu    sync.Mutex
	plans []models.LearningPlan
}

func NewPlanRepo() *PlanRepo { return &PlanRepo{} }

func (r *PlanRepo) CreatePlan(_ context.Context, plan *models.LearningPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if plan.ID.IsZero() {
		plan.ID = primitive.NewObjectID()
	}
	r.plans = append(r.plans, *plan)
	return nil
}

func (r *PlanRepo) GetPlans(_ context.Context) ([]models.LearningPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.LearningPlan{}, r.plans...), nil
}

func (r *PlanRepo) GetPlanByID(_ context.Context, id primitive.ObjectID) (*models.LearningPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.plans {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *PlanRepo) GetPlansByUserID(_ context.Context, userID string) ([]models.LearningPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.LearningPlan{}
	for _, p := range r.plans {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *PlanRepo) ReplacePlan(_ context.Context, plan *models.LearningPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.plans {
		if r.plans[i].ID == plan.ID {
			r.plans[i] = *plan
			return nil
		}
	}
	return models.ErrNotFound
}

func (r *PlanRepo) DeletePlan(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.plans {
		if r.plans[i].ID == id {
			r.plans = append(r.plans[:i], r.plans[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

// ProgressRepo is an in-memory LearningProgressRepository
type ProgressRepo struct {
	mu      sync.Mutex
	entries []models.LearningProgress
}

func NewProgressRepo() *ProgressRepo { return &ProgressRepo{} }

func (r *ProgressRepo) CreateProgress(_ context.Context, p *models.LearningProgress) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	r.entries = append(r.entries, *p)
	return nil
}

func (r *ProgressRepo) GetProgressEntries(_ context.Context) ([]models.LearningProgress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.LearningProgress{}, r.entries...), nil
}

func (r *ProgressRepo) GetProgressByID(_ context.Context, id primitive.ObjectID) (*models.LearningProgress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.entries {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *ProgressRepo) GetProgressByUserID(_ context.Context, userID string) ([]models.LearningProgress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.LearningProgress{}
	for _, p := range r.entries {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *ProgressRepo) ReplaceProgress(_ context.Context, p *models.LearningProgress) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.entries {
		if r.entries[i].ID == p.ID {
			r.entries[i] = *p
			return nil
		}
	}
	return models.ErrNotFound
}

func (r *ProgressRepo) DeleteProgress(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.entries {
		if r.entries[i].ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}
