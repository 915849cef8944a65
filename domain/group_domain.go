package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateGroup   = "group created successfully"
	MessageSuccessInviteToGroup = "user invited to group successfully"
	MessageSuccessGetGroups     = "groups retrieved successfully"

	MessageFailedCreateGroup   = "failed to create group"
	MessageFailedInviteToGroup = "failed to invite user to group"
	MessageFailedGetGroups     = "failed to retrieve groups"

	ErrGroupNotFound      = errors.New("group not found")
	ErrNotGroupMember     = errors.New("only group members can invite")
	ErrAlreadyGroupMember = errors.New("user is already a group member")
)

type (
	CreateGroupRequest struct {
		Name string `json:"name" validate:"required"`
		Type string `json:"type" validate:"required"`
	}

	GroupResponse struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Type        string    `json:"type"`
		CreatedByID string    `json:"created_by_id"`
		CreatedAt   time.Time `json:"created_at"`
	}

	GroupMemberResponse struct {
		ID      string         `json:"id"`
		GroupID string         `json:"group_id"`
		UserID  string         `json:"user_id"`
		Group   *GroupResponse `json:"group,omitempty"`
	}
)
