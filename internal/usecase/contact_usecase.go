package usecase

import (
	"context"
	"fmt"
	"net/http"

	repo "app/internal/repository"

	"github.com/google/uuid"
)

// ContactUsecase は問い合わせフォームのメール中継。カートとは独立した導線。
type ContactUsecase struct {
	mailer repo.Mailer
	from   string
	to     string
}

func NewContactUsecase(mailer repo.Mailer, from, to string) *ContactUsecase {
	return &ContactUsecase{mailer: mailer, from: from, to: to}
}

type ContactInput struct {
	Name    string
	Email   string
	Message string
}

type ContactResult struct {
	Success   bool   `json:"success"`
	InquiryID string `json:"inquiry_id"`
}

// SendInquiry は3項目すべて必須。送れたら問い合わせIDを返す。
func (u *ContactUsecase) SendInquiry(ctx context.Context, in ContactInput) (ContactResult, error) {
	if in.Name == "" {
		return ContactResult{}, NewHTTPError(http.StatusBadRequest, "Missing name")
	}
	if in.Email == "" {
		return ContactResult{}, NewHTTPError(http.StatusBadRequest, "Missing email")
	}
	if in.Message == "" {
		return ContactResult{}, NewHTTPError(http.StatusBadRequest, "Missing message")
	}

	inquiryID := uuid.NewString()
	subject := fmt.Sprintf("New Message from %s", in.Name)
	body := fmt.Sprintf("Inquiry ID: %s\nName: %s\nEmail: %s\nMessage:\n%s", inquiryID, in.Name, in.Email, in.Message)

	if err := u.mailer.Send(ctx, u.from, u.to, subject, body); err != nil {
		return ContactResult{}, NewHTTPError(http.StatusInternalServerError, "Failed to send email")
	}

	return ContactResult{Success: true, InquiryID: inquiryID}, nil
}
