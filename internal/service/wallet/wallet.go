package wallet

import (
	"context"
	"fmt"

	"github.com/AlekSi/pointer"
	"dispatch/internal/entities"
)

const (
	// Доли фиксированы политикой платформы: 80% курьеру, 20% платформе.
	courierSharePct = 80

	// CashoutMinimum — минимальный баланс для вывода, в минорных единицах.
	CashoutMinimum = 1000
)

type Wallet struct {
	courierRepository     CourierRepository
	transactionRepository TransactionRepository
	txManager             TxManager
}

func New(courierRepository CourierRepository, transactionRepository TransactionRepository, txManager TxManager) *Wallet {
	return &Wallet{
		courierRepository:     courierRepository,
		transactionRepository: transactionRepository,
		txManager:             txManager,
	}
}

// Split делит стоимость доставки между курьером и платформой.
// Целочисленное деление: остаток от процента всегда уходит платформе,
// поэтому courier + platform == fee для любой суммы.
func Split(fee int64) (courierShare, platformShare int64) {
	courierShare = fee * courierSharePct / 100
	platformShare = fee - courierShare
	return courierShare, platformShare
}

// Settle зачисляет долю курьера и пишет строку журнала CREDIT.
// Вызывается только внутри транзакции завершения доставки: контекст
// уже несёт транзакцию, и оба эффекта откатываются вместе с ней.
func (w *Wallet) Settle(ctx context.Context, courierID, deliveryID, fee int64) (courierShare, platformShare int64, err error) {
	if courierID <= 0 {
		return 0, 0, ErrInvalidCourierID
	}
	if fee < 0 {
		return 0, 0, ErrInvalidFee
	}

	courierShare, platformShare = Split(fee)

	_, err = w.courierRepository.CreditWallet(ctx, courierID, courierShare)
	if err != nil {
		return 0, 0, fmt.Errorf("credit courier wallet: %w", err)
	}

	_, err = w.transactionRepository.Create(ctx, entities.CourierTransaction{
		CourierID:  courierID,
		DeliveryID: &deliveryID,
		Type:       entities.TransactionCredit,
		Amount:     courierShare,
		Status:     entities.TransactionSuccess,
		Note:       fmt.Sprintf("delivery %d settlement", deliveryID),
	})
	if err != nil {
		return 0, 0, fmt.Errorf("create credit transaction: %w", err)
	}

	return courierShare, platformShare, nil
}

// Cashout атомарно обнуляет кошелёк и создаёт DEBIT-заявку в статусе
// PENDING. Сам перевод денег исполняется вне системы.
func (w *Wallet) Cashout(ctx context.Context, courierID int64) (int64, error) {
	if courierID <= 0 {
		return 0, ErrInvalidCourierID
	}

	var amount int64
	err := w.txManager.Do(ctx, func(ctx context.Context) error {
		courier, err := w.courierRepository.GetByID(ctx, courierID)
		if err != nil {
			return fmt.Errorf("get courier: %w", err)
		}

		if courier.WalletBalance < CashoutMinimum {
			return ErrBelowCashoutMinimum
		}
		amount = courier.WalletBalance

		_, err = w.courierRepository.Update(ctx, entities.CourierModify{
			ID:            &courierID,
			WalletBalance: pointer.To(int64(0)),
		})
		if err != nil {
			return fmt.Errorf("zero wallet: %w", err)
		}

		_, err = w.transactionRepository.Create(ctx, entities.CourierTransaction{
			CourierID: courierID,
			Type:      entities.TransactionDebit,
			Amount:    amount,
			Status:    entities.TransactionPending,
			Note:      "cashout request",
		})
		if err != nil {
			return fmt.Errorf("create debit transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return amount, nil
}
