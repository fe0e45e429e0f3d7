// Package models holds the gorm persistence models and their mappings to
// domain entities. Table and column names match the tables created by the
// SQL migrations under migrations/.
package models
