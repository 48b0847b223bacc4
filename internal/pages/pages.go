// Пакет pages хранит статические html страницы сервиса.
package pages

// Login - страница входа в MusiqueAimer.
const Login = `
<!DOCTYPE html>
<html>
<head>
    <title>Login - MusiqueAimer</title>
</head>
<body>
    <h1>Login to MusiqueAimer</h1>
    <p>Imagine a login form here. Once you log in, you will be redirected.</p>
</body>
</html>
`

// Phishing - поддельная страница, на которую злоумышленник уводит пользователя через открытый редирект.
const Phishing = `
<!DOCTYPE html>
<html>
<head>
    <title>OMG BIG SALE!!</title>
</head>
<body>
    <h1>Enter your Credit Card Details for a HUGE Discount!</h1>
    <form>
        <label for='cc'>Credit Card:</label>
        <input type='text' id='cc' name='cc'><br><br>
        <input type='submit' value='Get Discount!'>
    </form>
    <p style='color:red;'>We will now steal your details!</p>
</body>
</html>
`

// Home - домашняя страница пользователя.
const Home = `
<!DOCTYPE html>
<html>
<head>
    <title>Home - MusiqueAimer</title>
</head>
<body>
    <h1>Welcome to MusiqueAimer!</h1>
    <p>Your legitimate user dashboard.</p>
</body>
</html>
`
