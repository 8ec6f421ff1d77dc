package watoken

import (
	"fmt"
	"time"

	"aidanwoods.dev/go-paseto"
)

type Payload struct {
	Id    string    `json:"id"`
	Alias string    `json:"alias"`
	Iat   time.Time `json:"iat"`
	Exp   time.Time `json:"exp"`
}

func Encode(id string, alias string, privateKeyHex string) (string, error) {
	return EncodeforHours(id, alias, privateKeyHex, 2)
}

// EncodeforHours membuat token paseto v4 yang berlaku selama `hours` jam.
func EncodeforHours(id string, alias string, privateKeyHex string, hours int) (string, error) {
	secretKey, err := paseto.NewV4AsymmetricSecretKeyFromHex(privateKeyHex)
	if err != nil {
		return "", fmt.Errorf("invalid private key: %v", err)
	}

	token := paseto.NewToken()
	now := time.Now()
	token.SetIssuedAt(now)
	token.SetNotBefore(now)
	token.SetExpiration(now.Add(time.Duration(hours) * time.Hour))
	token.SetString("id", id)
	token.SetString("alias", alias)

	return token.V4Sign(secretKey, nil), nil
}

// Decode memverifikasi token dan mengembalikan payload-nya.
func Decode(publicKeyHex string, tokenStr string) (Payload, error) {
	var payload Payload

	publicKey, err := paseto.NewV4AsymmetricPublicKeyFromHex(publicKeyHex)
	if err != nil {
		return payload, fmt.Errorf("invalid public key: %v", err)
	}

	parser := paseto.NewParser()
	parser.AddRule(paseto.NotExpired())

	token, err := parser.ParseV4Public(publicKey, tokenStr, nil)
	if err != nil {
		return payload, fmt.Errorf("invalid or expired token: %v", err)
	}

	payload.Id, _ = token.GetString("id")
	payload.Alias, _ = token.GetString("alias")
	payload.Iat, _ = token.GetIssuedAt()
	payload.Exp, _ = token.GetExpiration()
	return payload, nil
}

// GenerateKey menghasilkan pasangan kunci hex untuk PRIVATEKEY/PUBLICKEY.
func GenerateKey() (privateKeyHex string, publicKeyHex string) {
	secretKey := paseto.NewV4AsymmetricSecretKey()
	return secretKey.ExportHex(), secretKey.Public().ExportHex()
}
