package team

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"preplabel-backend/domain"
	"preplabel-backend/entities"
	"preplabel-backend/internal/utils"
	"preplabel-backend/internal/utils/mailing"
	"preplabel-backend/internal/utils/storage"
	"preplabel-backend/pkg/jwt"
	"preplabel-backend/pkg/notification"
)

const inviteTokenLifetime = 72 * time.Hour

type (
	TeamService interface {
		RegisterOrganization(ctx context.Context, req domain.RegisterOrganizationRequest) (domain.LoginResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		InviteMember(ctx context.Context, req domain.InviteMemberRequest, orgID string) error
		AcceptInvite(ctx context.Context, req domain.AcceptInviteRequest) (domain.LoginResponse, error)
		GetMembers(ctx context.Context, orgID string) ([]domain.TeamMemberResponse, error)
		GetMe(ctx context.Context, userID string) (domain.TeamMemberResponse, error)
		UpdateMember(ctx context.Context, id string, req domain.UpdateMemberRequest, orgID string) error
		RemoveMember(ctx context.Context, id string, orgID string) error
		VerifyPin(ctx context.Context, req domain.VerifyPinRequest, orgID string) (domain.TeamMemberResponse, error)
		SetPin(ctx context.Context, req domain.SetPinRequest, userID string) error
		UploadAvatar(ctx context.Context, file *multipart.FileHeader, userID string) (string, error)
	}

	teamService struct {
		teamRepository      TeamRepository
		jwtService          jwt.JWTService
		notificationService notification.NotificationService
		s3                  storage.AwsS3
	}
)

func NewTeamService(teamRepository TeamRepository, jwtService jwt.JWTService, notificationService notification.NotificationService, s3 storage.AwsS3) TeamService {
	return &teamService{
		teamRepository:      teamRepository,
		jwtService:          jwtService,
		notificationService: notificationService,
		s3:                  s3,
	}
}

func (s *teamService) RegisterOrganization(ctx context.Context, req domain.RegisterOrganizationRequest) (domain.LoginResponse, error) {
	taken, err := s.teamRepository.CheckEmailExist(ctx, req.Email)
	if err != nil {
		return domain.LoginResponse{}, err
	}
	if taken {
		return domain.LoginResponse{}, domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.LoginResponse{}, err
	}

	org := &entities.Organization{
		ID:       uuid.New(),
		Name:     req.OrganizationName,
		IsActive: true,
	}
	if err := s.teamRepository.CreateOrganization(ctx, org); err != nil {
		return domain.LoginResponse{}, err
	}

	owner := &entities.TeamMember{
		ID:             uuid.New(),
		OrganizationID: org.ID,
		Name:           req.Name,
		Email:          req.Email,
		PasswordHash:   string(hash),
		Role:           domain.RoleOwner,
		IsActive:       true,
		IsVerified:     true,
	}
	if err := s.teamRepository.CreateMember(ctx, owner); err != nil {
		return domain.LoginResponse{}, err
	}

	token := s.jwtService.GenerateTokenUser(owner.ID.String(), org.ID.String(), owner.Role)
	return domain.LoginResponse{
		Token:          token,
		Role:           owner.Role,
		OrganizationID: org.ID.String(),
	}, nil
}

func (s *teamService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	member, err := s.teamRepository.GetMemberByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrCredentialsInvalid
		}
		return domain.LoginResponse{}, err
	}

	if !member.IsActive {
		return domain.LoginResponse{}, domain.ErrMemberInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrCredentialsInvalid
	}

	token := s.jwtService.GenerateTokenUser(member.ID.String(), member.OrganizationID.String(), member.Role)
	return domain.LoginResponse{
		Token:          token,
		Role:           member.Role,
		OrganizationID: member.OrganizationID.String(),
	}, nil
}

func (s *teamService) InviteMember(ctx context.Context, req domain.InviteMemberRequest, orgID string) error {
	taken, err := s.teamRepository.CheckEmailExist(ctx, req.Email)
	if err != nil {
		return err
	}
	if taken {
		return domain.ErrEmailTaken
	}

	orgUUID, err := uuid.Parse(orgID)
	if err != nil {
		return domain.ErrParseUUID
	}

	now := time.Now()
	member := &entities.TeamMember{
		ID:             uuid.New(),
		OrganizationID: orgUUID,
		Name:           req.Name,
		Email:          req.Email,
		Role:           req.Role,
		IsActive:       true,
		IsVerified:     false,
		InvitedAt:      &now,
	}
	if err := s.teamRepository.CreateMember(ctx, member); err != nil {
		return err
	}

	inviteToken, err := s.jwtService.GenerateTokenInvite(map[string]any{
		"member_id": member.ID.String(),
		"email":     member.Email,
	}, inviteTokenLifetime)
	if err != nil {
		return err
	}

	org, err := s.teamRepository.GetOrganizationByID(ctx, orgID)
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s/invite?token=%s", utils.GetConfig("APP_URL"), inviteToken)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>You have been invited to join <b>%s</b> as %s.</p><p><a href=\"%s\">Accept the invite</a> to set your password. The link expires in 72 hours.</p>",
		member.Name, org.Name, member.Role, link,
	)

	return mailing.SendMail(member.Email, "You are invited to "+org.Name, body)
}

func (s *teamService) AcceptInvite(ctx context.Context, req domain.AcceptInviteRequest) (domain.LoginResponse, error) {
	claims, err := s.jwtService.ValidateTokenInvite(req.Token)
	if err != nil {
		return domain.LoginResponse{}, domain.ErrInviteInvalid
	}

	memberID, ok := claims["member_id"].(string)
	if !ok {
		return domain.LoginResponse{}, domain.ErrInviteInvalid
	}

	member, err := s.teamRepository.GetMemberByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrInviteInvalid
		}
		return domain.LoginResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.LoginResponse{}, err
	}

	member.PasswordHash = string(hash)
	member.IsVerified = true
	if err := s.teamRepository.UpdateMember(ctx, member); err != nil {
		return domain.LoginResponse{}, err
	}

	// feed write is best effort
	_ = s.notificationService.Notify(ctx, member.OrganizationID.String(), nil,
		domain.NotificationKindTeam, "Member joined",
		fmt.Sprintf("%s accepted the invite and joined as %s.", member.Name, member.Role))

	token := s.jwtService.GenerateTokenUser(member.ID.String(), member.OrganizationID.String(), member.Role)
	return domain.LoginResponse{
		Token:          token,
		Role:           member.Role,
		OrganizationID: member.OrganizationID.String(),
	}, nil
}

func (s *teamService) GetMembers(ctx context.Context, orgID string) ([]domain.TeamMemberResponse, error) {
	members, err := s.teamRepository.GetMembers(ctx, orgID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.TeamMemberResponse, 0, len(members))
	for _, member := range members {
		response = append(response, toMemberResponse(member))
	}
	return response, nil
}

func (s *teamService) GetMe(ctx context.Context, userID string) (domain.TeamMemberResponse, error) {
	member, err := s.teamRepository.GetMemberByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.TeamMemberResponse{}, domain.ErrMemberNotFound
		}
		return domain.TeamMemberResponse{}, err
	}
	return toMemberResponse(member), nil
}

func (s *teamService) getOwnedMember(ctx context.Context, id string, orgID string) (*entities.TeamMember, error) {
	member, err := s.teamRepository.GetMemberByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, err
	}
	if member.OrganizationID.String() != orgID {
		return nil, domain.ErrUserNotAllowed
	}
	return member, nil
}

func (s *teamService) UpdateMember(ctx context.Context, id string, req domain.UpdateMemberRequest, orgID string) error {
	member, err := s.getOwnedMember(ctx, id, orgID)
	if err != nil {
		return err
	}

	if req.Name != "" {
		member.Name = req.Name
	}
	if req.Role != "" {
		if member.Role == domain.RoleOwner {
			return domain.ErrUserNotAllowed
		}
		member.Role = req.Role
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}

	return s.teamRepository.UpdateMember(ctx, member)
}

func (s *teamService) RemoveMember(ctx context.Context, id string, orgID string) error {
	member, err := s.getOwnedMember(ctx, id, orgID)
	if err != nil {
		return err
	}
	if member.Role == domain.RoleOwner {
		return domain.ErrCannotRemoveOwner
	}
	return s.teamRepository.DeleteMember(ctx, id)
}

// VerifyPin checks a member's 4-digit PIN before sensitive kitchen actions
// on a shared device. The PIN never leaves bcrypt comparison.
func (s *teamService) VerifyPin(ctx context.Context, req domain.VerifyPinRequest, orgID string) (domain.TeamMemberResponse, error) {
	member, err := s.getOwnedMember(ctx, req.MemberID, orgID)
	if err != nil {
		return domain.TeamMemberResponse{}, err
	}

	if !member.IsActive {
		return domain.TeamMemberResponse{}, domain.ErrMemberInactive
	}
	if member.PinHash == "" {
		return domain.TeamMemberResponse{}, domain.ErrPinNotSet
	}
	if err := bcrypt.CompareHashAndPassword([]byte(member.PinHash), []byte(req.Pin)); err != nil {
		return domain.TeamMemberResponse{}, domain.ErrPinInvalid
	}

	return toMemberResponse(member), nil
}

func (s *teamService) SetPin(ctx context.Context, req domain.SetPinRequest, userID string) error {
	member, err := s.teamRepository.GetMemberByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMemberNotFound
		}
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Pin), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	member.PinHash = string(hash)
	return s.teamRepository.UpdateMember(ctx, member)
}

func (s *teamService) UploadAvatar(ctx context.Context, file *multipart.FileHeader, userID string) (string, error) {
	member, err := s.teamRepository.GetMemberByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrMemberNotFound
		}
		return "", err
	}

	var objectKey string
	if existing := s.s3.GetObjectKeyFromLink(member.AvatarURL); existing != "" {
		objectKey, err = s.s3.UpdateFile(existing, file, storage.AllowImage...)
	} else {
		fileName := fmt.Sprintf("%s%s", member.ID.String(), filepath.Ext(file.Filename))
		objectKey, err = s.s3.UploadFile(fileName, file, "avatars", storage.AllowImage...)
	}
	if err != nil {
		return "", err
	}

	member.AvatarURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.teamRepository.UpdateMember(ctx, member); err != nil {
		return "", err
	}
	return member.AvatarURL, nil
}

func toMemberResponse(member *entities.TeamMember) domain.TeamMemberResponse {
	return domain.TeamMemberResponse{
		ID:        member.ID.String(),
		Name:      member.Name,
		Email:     member.Email,
		Role:      member.Role,
		IsActive:  member.IsActive,
		HasPin:    member.PinHash != "",
		AvatarURL: member.AvatarURL,
	}
}
