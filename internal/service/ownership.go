package service

import (
	"rhythm_coach_backend/internal/model"
)

// CanDelete 删除权限判定：管理员，或操作者就是资源归属者（用户名区分大小写精确匹配）。
// 统一用于标注和打歌记录的删除；每次删除时现算，不缓存判定结果。
func CanDelete(actor model.ActorContext, ownerUsername string) bool {
	if actor.IsAdmin() {
		return true
	}
	return actor.Username == ownerUsername
}
