package handlers

import (
	"strconv"

	"github.com/anjiri1684/course_hours/database"
	"github.com/anjiri1684/course_hours/services"
	"github.com/anjiri1684/course_hours/utils"
	"github.com/gofiber/fiber/v2"
)

type ConsumeRequest struct {
	StudentIDs    []uint   `json:"student_ids" validate:"required,min=1"`
	ActivityID    *uint    `json:"activity_id"`
	Remark        string   `json:"remark"`
	HoursConsumed *float64 `json:"hours_consumed"`
	ConsumeDate   string   `json:"consume_date"`
}

func ConsumeHours(c *fiber.Ctx) error {
	var req ConsumeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cannot parse JSON")
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, "student_ids must not be empty")
	}

	in := services.ConsumeInput{
		StudentIDs:    req.StudentIDs,
		ActivityID:    req.ActivityID,
		HoursConsumed: req.HoursConsumed,
		Remark:        req.Remark,
	}
	if req.ConsumeDate != "" {
		t, ok := parseDate(req.ConsumeDate)
		if !ok {
			return badRequest(c, "Invalid consume_date")
		}
		in.ConsumeDate = &t
	}

	result, err := consumption.Consume(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

func ListConsumptionRecords(c *fiber.Ctx) error {
	page := utils.ParsePage(c, 10)
	filter := services.RecordFilter{
		StudentName: c.Query("student_name"),
		Limit:       page.Limit,
		Offset:      page.Offset,
	}
	if raw := c.Query("course_package"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return badRequest(c, "Invalid course_package")
		}
		filter.CoursePackageID = uint(id)
	}

	records, err := services.ListConsumptionRecords(c.UserContext(), database.DB, filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(records)
}

func ReverseConsumption(c *fiber.Ctx) error {
	id, ok := idParam(c)
	if !ok {
		return badRequest(c, "Invalid consumption record ID")
	}
	record, err := consumption.Reverse(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Consumption record reversed", "record": record})
}
