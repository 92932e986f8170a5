package service

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/linkpay/webclient/internal/model"
)

func (s *Service) validateLogin(input model.LoginDTO) string {
	err := s.validate.Struct(input)
	if err == nil {
		return ""
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		switch fieldErrs[0].Field() {
		case "Email":
			return "Enter a valid email"
		case "Password":
			return "Enter your password"
		}
	}

	return model.ErrInvalidCredentialsMessage
}

func (s *Service) validateRegister(input model.RegisterDTO) string {
	err := s.validate.Struct(input)
	if err == nil {
		return ""
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		switch fieldErrs[0].Field() {
		case "Email":
			return "Enter a valid email"
		case "Password":
			return "Enter a password"
		case "Name":
			return "Enter your first name"
		case "LastName":
			return "Enter your last name"
		}
	}

	return "Registration failed"
}

// validateCreateOrder re-checks the create form server-side; the form is
// also gated in the page, this is the defensive pass.
func (s *Service) validateCreateOrder(input model.CreateOrderDTO) string {
	err := s.validate.Struct(input)
	if err == nil {
		return ""
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		switch fieldErrs[0].Field() {
		case "Amount":
			return "Enter a valid amount"
		case "Email":
			return "Enter a valid email"
		case "Description":
			return "Enter a description"
		case "Currency":
			return "Select a currency"
		}
	}

	return "Invalid order"
}
