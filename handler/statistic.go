package handler

import (
	"log"

	"park_manager/system"
	"park_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/robfig/cron/v3"
)

var statsLogger *cron.Cron

// GetAdminStats is the admin dashboard view: the two running totals plus the
// formatted report line. Totals are gross; cancellations do not reduce them.
func GetAdminStats(c *fiber.Ctx) error {
	stats := system.Ctrl.Stats()

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"totalOrders":  stats.TotalOrders,
		"totalRevenue": stats.TotalRevenue,
		"report":       system.Ctrl.StatsReport(),
	})
}

// StartStatsLogger prints the statistics report every hour so revenue is
// visible in the server log without opening the dashboard.
func StartStatsLogger() {
	statsLogger = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := statsLogger.AddFunc("0 * * * *", func() {
		log.Println(system.Ctrl.StatsReport())
	})
	if err != nil {
		log.Printf("stats logger init failed: %v", err)
		return
	}

	statsLogger.Start()
	log.Println("Stats logger started (hourly)")
}

func StopStatsLogger() {
	if statsLogger != nil {
		statsLogger.Stop()
	}
}
