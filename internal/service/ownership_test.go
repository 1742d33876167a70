package service

import (
	"testing"

	"rhythm_coach_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestCanDelete(t *testing.T) {
	tests := []struct {
		name  string
		actor model.ActorContext
		owner string
		want  bool
	}{
		{"本人可删", model.ActorContext{Username: "alice", Role: model.RoleUser}, "alice", true},
		{"管理员可删任何人的", model.ActorContext{Username: "root", Role: model.RoleAdmin}, "alice", true},
		{"他人不可删", model.ActorContext{Username: "bob", Role: model.RoleUser}, "alice", false},
		{"用户名大小写敏感", model.ActorContext{Username: "Alice", Role: model.RoleUser}, "alice", false},
		{"空用户名不匹配任何归属", model.ActorContext{Username: "", Role: model.RoleUser}, "alice", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanDelete(tt.actor, tt.owner))
		})
	}
}
