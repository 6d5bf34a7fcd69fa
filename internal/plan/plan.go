// Package plan holds the fixed schedule data: the start date, the size of the
// candidate window and the activities for each work day.
package plan

import "time"

// StartDate is the first candidate day of the schedule (a Friday).
var StartDate = time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)

// CandidateDays is the number of consecutive calendar days considered,
// starting at StartDate.
const CandidateDays = 25

// TaskDescriptions are the activities for each work day, in order.
var TaskDescriptions = []string{
	"1. Review current TaskManager component architecture\n2. Analyze existing task types and interfaces\n3. Document current API endpoints structure",
	"1. Enhance task filtering system performance\n2. Implement advanced search functionality\n3. Optimize database queries for task retrieval",
	"1. Improve task status management workflow\n2. Add bulk task operations functionality\n3. Implement task priority auto-assignment logic",
	"1. Develop task dependency tracking system\n2. Create task timeline visualization component\n3. Add task progress indicators",
	"1. Implement task notification system\n2. Add email alerts for overdue tasks\n3. Create task reminder scheduling",
	"1. Enhance subtask management interface\n2. Add drag-and-drop task reordering\n3. Implement task completion percentage calculation",
	"1. Develop task analytics dashboard\n2. Create task performance metrics\n3. Add user productivity tracking",
	"1. Implement task collaboration features\n2. Add task commenting system\n3. Create task assignment notifications",
	"1. Add task file attachment functionality\n2. Implement task history tracking\n3. Create task audit trail system",
	"1. Develop task template system\n2. Add recurring task functionality\n3. Implement task cloning feature",
	"1. Enhance task mobile responsiveness\n2. Optimize task loading performance\n3. Add task offline synchronization",
	"1. Implement task export functionality\n2. Add task reporting system\n3. Create task data visualization charts",
	"1. Add task integration with calendar\n2. Implement task time tracking\n3. Create task deadline management",
	"1. Develop task backup and restore\n2. Add task version control\n3. Implement task conflict resolution",
	"1. Create task API documentation\n2. Add task validation rules\n3. Implement task security measures",
	"1. Perform task module testing\n2. Fix identified bugs and issues\n3. Optimize task component performance",
	"1. Conduct final task module review\n2. Prepare deployment documentation\n3. Create user training materials",
}
