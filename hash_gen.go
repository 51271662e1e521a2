package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	password := "admin" // 默认密码，可通过命令行参数覆盖
	if len(os.Args) > 1 {
		password = os.Args[1]
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	fmt.Printf("Hashed Password: %s\n", string(hashedPassword))
}

// INSERT INTO users (username, password_hash, role, created_at, updated_at)
// VALUES ('admin', '<上面输出的哈希>', 'admin', strftime('%Y-%m-%d %H:%M:%S', 'now'), strftime('%Y-%m-%d %H:%M:%S', 'now'));
