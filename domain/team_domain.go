package domain

import (
	"errors"
)

var (
	MessageSuccessRegister        = "organization registered successfully"
	MessageSuccessLogin           = "login successful"
	MessageSuccessInviteMember    = "team member invited successfully"
	MessageSuccessGetMembers      = "team members retrieved successfully"
	MessageSuccessUpdateMember    = "team member updated successfully"
	MessageSuccessRemoveMember    = "team member removed successfully"
	MessageSuccessVerifyPin       = "pin verified successfully"
	MessageSuccessSetPin          = "pin updated successfully"
	MessageSuccessMe              = "profile retrieved successfully"

	MessageFailedRegister     = "failed to register organization"
	MessageFailedLogin        = "failed to login"
	MessageFailedInviteMember = "failed to invite team member"
	MessageFailedGetMembers   = "failed to retrieve team members"
	MessageFailedUpdateMember = "failed to update team member"
	MessageFailedRemoveMember = "failed to remove team member"
	MessageFailedVerifyPin    = "failed to verify pin"
	MessageFailedSetPin       = "failed to update pin"
	MessageFailedMe           = "failed to retrieve profile"

	ErrEmailTaken           = errors.New("email already registered")
	ErrMemberNotFound       = errors.New("team member not found")
	ErrCredentialsInvalid   = errors.New("invalid email or password")
	ErrPinInvalid           = errors.New("invalid pin")
	ErrPinNotSet            = errors.New("pin has not been set")
	ErrCannotRemoveOwner    = errors.New("organization owner cannot be removed")
	ErrRoleInvalid          = errors.New("invalid role")
	ErrMemberInactive       = errors.New("team member is deactivated")
	ErrInviteInvalid        = errors.New("invite link is invalid or expired")
)

type (
	RegisterOrganizationRequest struct {
		OrganizationName string `json:"organization_name" validate:"required"`
		Name             string `json:"name" validate:"required"`
		Email            string `json:"email" validate:"required,email"`
		Password         string `json:"password" validate:"required,min=8"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token          string `json:"token"`
		Role           string `json:"role"`
		OrganizationID string `json:"organization_id"`
	}

	InviteMemberRequest struct {
		Name  string `json:"name" validate:"required"`
		Email string `json:"email" validate:"required,email"`
		Role  string `json:"role" validate:"required,oneof=manager staff"`
	}

	UpdateMemberRequest struct {
		Name     string `json:"name" validate:"omitempty"`
		Role     string `json:"role" validate:"omitempty,oneof=manager staff"`
		IsActive *bool  `json:"is_active" validate:"omitempty"`
	}

	TeamMemberResponse struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		Email     string `json:"email"`
		Role      string `json:"role"`
		IsActive  bool   `json:"is_active"`
		HasPin    bool   `json:"has_pin"`
		AvatarURL string `json:"avatar_url,omitempty"`
	}

	AcceptInviteRequest struct {
		Token    string `json:"token" validate:"required"`
		Password string `json:"password" validate:"required,min=8"`
	}

	VerifyPinRequest struct {
		MemberID string `json:"member_id" validate:"required,uuid"`
		Pin      string `json:"pin" validate:"required,len=4,numeric"`
	}

	SetPinRequest struct {
		Pin string `json:"pin" validate:"required,len=4,numeric"`
	}
)
