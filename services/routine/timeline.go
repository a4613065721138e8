// File: services/routine/timeline.go
package routine

import "routinely/models"

// Block is one segment of a day's rendered timeline: either a task or a
// synthesized free-time filler. Blocks are a presentation projection only
// and are never persisted as tasks.
type Block struct {
	Name  string `json:"name"`
	Start int    `json:"start"` // minutes from midnight
	End   int    `json:"end"`
	Label string `json:"label"` // e.g. "09:00 AM - 10:30 AM"
	Free  bool   `json:"free"`
}

const (
	dayStartMinute = 0
	dayEndMinute   = 1440
	freeBlockName  = "Free time"
)

func freeLabel(start, end int) string {
	return minutesToClock(start).String() + " - " + minutesToClock(end).String()
}

// DayTimeline projects one day's sorted tasks onto a full-day timeline,
// filling the space before, between and after tasks with free-time blocks.
// Malformed stored entries are skipped; a legacy overnight entry is clipped
// at the end of the day.
func DayTimeline(tasks []models.Task) []Block {
	var blocks []Block
	cursor := dayStartMinute

	for _, task := range tasks {
		start, end, overnight, ok := rangeMinutes(task.Time)
		if !ok {
			continue
		}
		if overnight {
			end = dayEndMinute
		}
		if start > cursor {
			blocks = append(blocks, Block{
				Name:  freeBlockName,
				Start: cursor,
				End:   start,
				Label: freeLabel(cursor, start),
				Free:  true,
			})
		}
		blocks = append(blocks, Block{
			Name:  task.Name,
			Start: start,
			End:   end,
			Label: task.Time,
		})
		if end > cursor {
			cursor = end
		}
	}

	if cursor < dayEndMinute {
		blocks = append(blocks, Block{
			Name:  freeBlockName,
			Start: cursor,
			End:   dayEndMinute,
			Label: freeLabel(cursor, dayEndMinute),
			Free:  true,
		})
	}

	return blocks
}
