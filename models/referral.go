package models

import (
	"context"
	"time"
)

// Referral links a referrer, a referred friend and a course.
// Rows are only ever inserted.
type Referral struct {
	ID          int       `json:"id" gorm:"primaryKey"`
	YourName    string    `json:"yourName" gorm:"size:128"`
	YourEmail   string    `json:"yourEmail" gorm:"size:128"`
	FriendName  string    `json:"friendName" gorm:"size:128"`
	FriendEmail string    `json:"friendEmail" gorm:"size:128;index"`
	CourseName  string    `json:"courseName" gorm:"size:256"`
	CourseURL   string    `json:"courseURL" gorm:"size:2048"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func (referral *Referral) Create(ctx context.Context) error {
	return DB.WithContext(ctx).Create(referral).Error
}
