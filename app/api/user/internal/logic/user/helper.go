package logic

import (
	"strconv"
	"time"

	"KasumiAI/app/api/user/internal/types"
	usermodel "KasumiAI/app/dal/user"
)

func toUserProfile(u *usermodel.Users) types.UserProfile {
	if u == nil {
		return types.UserProfile{}
	}

	return types.UserProfile{
		UserId:    strconv.FormatUint(u.Id, 10),
		Username:  u.Username,
		CreatedAt: u.CreateTime.Format(time.RFC3339),
		UpdatedAt: u.UpdateTime.Format(time.RFC3339),
	}
}
