// Package commands defines the griya CLI.
//
// Commands
//
//   - serve     Run the Telegram bot
//   - migrate   Apply or roll back the rooms schema
//   - rooms     Print the room catalog
package commands
