package testutil

import (
	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/repositories"
	"github.com/chamodKanishka/Cooking-Skill-Management-System/internal/sequence"
)

var (
	_ sequence.Generator                      = (*Sequence)(nil)
	_ repositories.PostRepository             = (*PostRepo)(nil)
	_ repositories.UserRepository             = (*UserRepo)(nil)
	_ repositories.InteractionRepository      = (*InteractionRepo)(nil)
	_ repositories.FollowRepository           = (*FollowRepo)(nil)
	_ repositories.LearningPlanRepository     = (*PlanRepo)(nil)
	_ repositories.LearningProgressRepository = (*ProgressRepo)(nil)
)
