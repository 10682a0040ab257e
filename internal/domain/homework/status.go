package homework

import (
	"fmt"

	"homework_status_bot/internal/domain/failure"
)

const statusChangedTemplate = "Изменился статус проверки работы \"%s\". %s"

// ParseStatus extracts name and status from one homework record and
// renders the status-change message.
func ParseStatus(record any) (Homework, error) {
	fields, ok := record.(map[string]any)
	if !ok {
		return Homework{}, failure.New(failure.KindFormat, "homework record is %T, expected an object", record)
	}

	name, _ := fields["homework_name"].(string)
	if name == "" {
		return Homework{}, failure.New(failure.KindFormat, "homework record has no homework_name")
	}

	rawStatus, present := fields["status"]
	if !present || rawStatus == nil {
		return Homework{}, failure.New(failure.KindFormat, "homework %q has no status", name)
	}
	statusText, ok := rawStatus.(string)
	if !ok {
		return Homework{}, failure.New(failure.KindFormat, "homework %q status is %T, expected a string", name, rawStatus)
	}

	status := Status(statusText)
	verdict, ok := Verdict(status)
	if !ok {
		return Homework{}, failure.New(failure.KindUnknownStatus, "homework %q has unknown status %q", name, statusText)
	}

	return Homework{
		Name:    name,
		Status:  status,
		Message: fmt.Sprintf(statusChangedTemplate, name, verdict),
	}, nil
}
