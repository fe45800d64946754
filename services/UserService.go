package services

import (
	"log"

	"marketstore/entities"
	"marketstore/models"
	"marketstore/repository"
)

type UserService struct {
	ur repository.UserRepository
	tr repository.TokenRepository
}

func NewUserService(uRepo repository.UserRepository, tRepo repository.TokenRepository) UserService {
	return UserService{
		ur: uRepo,
		tr: tRepo,
	}
}

func (us *UserService) RegisterRequest(req models.RegisterRequest) (uModel models.User_db, err error) {
	if verrs := req.Validate(); verrs != nil {
		err = verrs
		return
	}
	var ex bool
	_, ex, err = us.ur.GetUserByEmail(req.Email)
	if err != nil {
		return
	}
	if ex {
		err = models.ValidationErrors{"email": "The email has already been taken."}
		return
	}
	var hashedPassword string
	hashedPassword, err = us.ur.EncryptPassword(req.Password)
	if err != nil {
		return
	}
	uModel = models.User_db{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
		Role:     "user",
	}
	uModel.Id, err = us.ur.AddNewUser(uModel)
	return
}

func (us *UserService) LoginRequest(creds models.Credentials) (token string, err error) {
	if verrs := creds.Validate(); verrs != nil {
		err = verrs
		return
	}
	uModel, ex, e := us.ur.GetUserByEmail(creds.Email)
	if e != nil {
		err = e
		return
	}
	// same answer for unknown email and wrong password
	if !ex || !us.ur.VerifyPassword(uModel.Password, creds.Password) {
		err = models.ErrUnauthorized
		return
	}
	token, err = us.tr.CreateToken(uModel)
	return
}

func (us *UserService) LogoutRequest(token string) (err error) {
	user, ex, e := us.tr.GetTokenInfo(token)
	if e != nil {
		err = e
		return
	}
	if !ex {
		err = models.ErrUnauthorized
		return
	}
	err = us.tr.DeleteUserTokens(user.Id)
	return
}

func (us *UserService) CheckAuth(token string) (user entities.UserData, ok bool, err error) {
	user, ok, err = us.tr.GetTokenInfo(token)
	return
}

// EnsureAdmin seeds the bootstrap admin account when configured.
func (us *UserService) EnsureAdmin(email, password string) (err error) {
	if email == "" || password == "" {
		return
	}
	_, ex, e := us.ur.GetUserByEmail(email)
	if e != nil || ex {
		err = e
		return
	}
	var hashedPassword string
	hashedPassword, err = us.ur.EncryptPassword(password)
	if err != nil {
		return
	}
	_, err = us.ur.AddNewUser(models.User_db{
		Name:     "Administrator",
		Email:    email,
		Password: hashedPassword,
		Role:     "admin",
	})
	if err == nil {
		log.Printf("admin account %s created", email)
	}
	return
}
