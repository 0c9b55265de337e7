package dto

import "github.com/SscSPs/bank_portal/internal/core/domain"

// CreateGroupRequest creates an account group. OwnerID defaults to the caller.
type CreateGroupRequest struct {
	GroupName   string           `json:"groupName" binding:"required,max=100"`
	Description string           `json:"description" binding:"max=255"`
	GroupType   domain.GroupType `json:"groupType" binding:"required"`
	OwnerID     int64            `json:"ownerId" binding:"gte=0"`
	MaxAccounts int              `json:"maxAccounts" binding:"gte=0"`
}

// ToDomain converts the request to a group command.
func (r CreateGroupRequest) ToDomain() domain.NewGroup {
	return domain.NewGroup{
		GroupName:   r.GroupName,
		Description: r.Description,
		GroupType:   r.GroupType,
		OwnerID:     r.OwnerID,
		MaxAccounts: r.MaxAccounts,
	}
}
