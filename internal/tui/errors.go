// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-project-keeper/internal/service"
)

func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrProjectNotFound):
		return "Проект не найден"
	case errors.Is(err, service.ErrWrongCredentials):
		return "Неверный логин или пароль"
	case errors.Is(err, service.ErrUserAlreadyExists):
		return "Пользователь уже существует"
	case errors.Is(err, service.ErrInvalidArgument):
		return "Заполните обязательные поля"
	}

	return err.Error()
}
