package service

import "errors"

var (
	// ErrSessionNotPending is returned when a status transition targets a
	// session already in a terminal status.
	ErrSessionNotPending = errors.New("session is not pending")

	// ErrNoActivePlan is returned when an operation needs a configured
	// study plan and none is active.
	ErrNoActivePlan = errors.New("no active study plan")

	// ErrOnboardingIncomplete is returned when an operation needs the
	// onboarding profile and none has been saved.
	ErrOnboardingIncomplete = errors.New("onboarding has not been completed")
)
