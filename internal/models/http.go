package models

// UserAgent is sent with every request to the seeded API.
const UserAgent = "dsm44-seeder/1.0"
