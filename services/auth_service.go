package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"coffeeshop/entity"
	"coffeeshop/repository"
	"coffeeshop/utils"

	"gorm.io/gorm"
)

type AuthService struct {
	Users     *repository.UserRepository
	JWTSecret string
	JWTTTL    time.Duration
}

func NewAuthService(users *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{Users: users, JWTSecret: secret, JWTTTL: ttl}
}

// Register สมัครสมาชิกใหม่ — email ซ้ำคือ ErrEmailTaken
func (s *AuthService) Register(email, password string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrBadInput
	}

	_, err := s.Users.FindByEmail(email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storeErr(err)
	}

	user, err := entity.NewUser(email, password)
	if err != nil {
		return nil, ErrBadInput
	}
	if err := s.Users.Create(user); err != nil {
		return nil, storeErr(err)
	}
	return user, nil
}

// Login เช็ค email ก่อนเสมอ (ErrUserNotFound มาก่อน ErrWrongPassword)
// รหัสผ่านเทียบ plaintext ตรง ๆ — ไม่ hash (ดู DESIGN.md)
func (s *AuthService) Login(email, password string) (*entity.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", ErrBadInput
	}

	user, err := s.Users.FindByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", ErrUserNotFound
	}
	if err != nil {
		return nil, "", storeErr(err)
	}
	if user.Password != password {
		return nil, "", ErrWrongPassword
	}

	token, err := utils.GenerateToken(user.ID, user.Email, s.JWTSecret, s.JWTTTL)
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}
	return user, token, nil
}

// Me โหลดโปรไฟล์จาก userId ใน token
func (s *AuthService) Me(userID string) (*entity.User, error) {
	user, err := s.Users.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return user, nil
}

func storeErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStore, err)
}
