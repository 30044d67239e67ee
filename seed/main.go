// Command seed loads the treatment catalog into appointmentOptions.
// Existing treatments are updated in place by name.
package main

import (
	"context"
	"time"

	"doctorsportal/config"
	"doctorsportal/database"
	treatmentRepo "doctorsportal/database/repository/treatment"
	"doctorsportal/models"
	"doctorsportal/utils"

	"go.uber.org/zap"
)

var defaultSlots = []string{
	"08.00 AM - 08.30 AM",
	"08.30 AM - 09.00 AM",
	"09.00 AM - 09.30 AM",
	"09.30 AM - 10.00 AM",
	"10.00 AM - 10.30 AM",
	"10.30 AM - 11.00 AM",
	"11.00 AM - 11.30 AM",
	"11.30 AM - 12.00 PM",
	"01.00 PM - 01.30 PM",
	"01.30 PM - 02.00 PM",
	"02.00 PM - 02.30 PM",
	"02.30 PM - 03.00 PM",
	"03.00 PM - 03.30 PM",
	"03.30 PM - 04.00 PM",
	"04.00 PM - 04.30 PM",
	"04.30 PM - 05.00 PM",
}

var catalog = []models.Treatment{
	{Name: "Teeth Orthodontics", Price: 79, Slots: defaultSlots},
	{Name: "Cosmetic Dentistry", Price: 89, Slots: defaultSlots},
	{Name: "Teeth Cleaning", Price: 99, Slots: defaultSlots},
	{Name: "Cavity Protection", Price: 69, Slots: defaultSlots},
	{Name: "Pediatric Dental", Price: 59, Slots: defaultSlots},
	{Name: "Oral Surgery", Price: 129, Slots: defaultSlots},
}

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	repo := treatmentRepo.NewMongoTreatmentRepo(database.Database())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := repo.EnsureIndexes(ctx); err != nil {
		logger.Fatal("failed to create catalog indexes", zap.Error(err))
	}
	for i := range catalog {
		if err := repo.Upsert(ctx, &catalog[i]); err != nil {
			logger.Fatal("failed to seed treatment", zap.String("name", catalog[i].Name), zap.Error(err))
		}
		logger.Info("seeded treatment", zap.String("name", catalog[i].Name), zap.Int("slots", len(catalog[i].Slots)))
	}

	if err := database.CloseDB(ctx); err != nil {
		logger.Warn("failed to disconnect from MongoDB", zap.Error(err))
	}
}
