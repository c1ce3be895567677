package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jwhitfield/club-scheduler/pkg/core/model"
)

// publishedNotifications builds one SchedulePublished notification per member
// who received at least one role in the schedule.
func publishedNotifications(schedule *model.MonthlySchedule) []model.Notification {
	notified := make(map[string]bool)
	var notifications []model.Notification

	for _, meeting := range schedule.Meetings {
		for _, memberID := range meeting.Assignments {
			if memberID == "" || notified[memberID] {
				continue
			}
			notified[memberID] = true
			notifications = append(notifications, model.Notification{
				ID:       uuid.New().String(),
				MemberID: memberID,
				Type:     model.NotifySchedulePublished,
				Title:    "Schedule published",
				Message:  fmt.Sprintf("You have roles in the %s schedule", schedule.ID),
				Metadata: model.NotificationMetadata{ScheduleID: schedule.ID},
			})
		}
	}

	return notifications
}

// blackoutNotifications builds one MeetingBlackout notification per member
// whose assignment was cleared when a meeting was blacked out.
func blackoutNotifications(scheduleID string, meeting model.Meeting, cleared model.RoleAssignment) []model.Notification {
	notified := make(map[string]bool)
	var notifications []model.Notification

	for role, memberID := range cleared {
		if memberID == "" || notified[memberID] {
			continue
		}
		notified[memberID] = true
		notifications = append(notifications, model.Notification{
			ID:       uuid.New().String(),
			MemberID: memberID,
			Type:     model.NotifyMeetingBlackout,
			Title:    "Meeting cancelled",
			Message:  fmt.Sprintf("The %s meeting was cancelled and your role was cleared", meeting.Date),
			Metadata: model.NotificationMetadata{
				ScheduleID:  scheduleID,
				MeetingDate: meeting.Date,
				Role:        role,
			},
		})
	}

	return notifications
}
