package utils

import (
	"fmt"
	"math/rand"
	"time"
)

// Function to generate 6-digit OTP
func GenerateOTP() string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	otp := r.Intn(1000000)          // Generate a random number between 0 to 999999
	return fmt.Sprintf("%06d", otp) // Format the OTP to always be 6 digits
}
